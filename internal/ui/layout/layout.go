// Package layout frames every screen between a header and a footer bar.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ks2maths/internal/ui/theme"
)

const (
	MinWidth  = 64
	MinHeight = 20

	// HeaderHeight and FooterHeight include the bar borders.
	HeaderHeight = 3
	FooterHeight = 3
)

const brand = "  KS2 Maths"

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for a screen between the bars.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(text))
}

// RenderHeader shows the app name on the left, title in the middle and
// status on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	left := theme.Brand.Render(brand)
	mid := theme.Body.Render(title)
	right := theme.Status.Render(status)

	gapL := max((inner-lipgloss.Width(mid))/2-lipgloss.Width(left), 1)
	gapR := max(inner-lipgloss.Width(left)-gapL-lipgloss.Width(mid)-lipgloss.Width(right), 1)

	row := left + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + right
	return theme.Bar.Width(width).Render(row)
}

// RenderFooter lists the key hints. Hints that do not fit on the bar are
// dropped from the end.
func RenderFooter(hints []KeyHint, width int) string {
	limit := max(width-4, 0)
	row := " "
	for _, h := range hints {
		part := "  " + theme.Key.Render(h.Key) + " " + theme.KeyDesc.Render(h.Description)
		if lipgloss.Width(row)+lipgloss.Width(part) > limit {
			break
		}
		row += part
	}
	return theme.Bar.Width(width).Render(row)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the rows between them.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
