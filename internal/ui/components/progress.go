package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ks2maths/internal/ui/theme"
)

// QuestionTrack is a progress bar with one cell per question of a practice
// run. Answered cells show whether the answer was right.
type QuestionTrack struct {
	Label   string
	Results []bool // one entry per answered question, in order
	Total   int
	Width   int
}

// NewQuestionTrack creates a track for total questions.
func NewQuestionTrack(label string, results []bool, total, width int) QuestionTrack {
	return QuestionTrack{Label: label, Results: results, Total: total, Width: width}
}

// Fraction returns the answered share of the run, clamped to [0, 1].
func (q QuestionTrack) Fraction() float64 {
	if q.Total <= 0 {
		return 0
	}
	return min(max(float64(len(q.Results))/float64(q.Total), 0), 1)
}

func (q QuestionTrack) cellWidth() int {
	avail := q.Width - lipgloss.Width(q.Label) - 2
	if q.Total <= 0 || avail < q.Total {
		return 1
	}
	return min(avail/q.Total, 4)
}

// View renders the track.
func (q QuestionTrack) View() string {
	var b strings.Builder
	if q.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(q.Label))
		b.WriteString("  ")
	}
	cell := strings.Repeat(" ", q.cellWidth())
	for i := 0; i < q.Total; i++ {
		style := theme.ProgressEmpty
		if i < len(q.Results) {
			style = theme.ProgressFilled
			if !q.Results[i] {
				style = theme.ProgressMissed
			}
		}
		b.WriteString(style.Render(cell))
	}
	if q.Total == 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d%%", int(q.Fraction()*100))))
	}
	return b.String()
}
