// Package theme holds the TUI palette and shared styles.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#2563EB") // blue
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title    = lipgloss.NewStyle().Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Heading  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Hint     = lipgloss.NewStyle().Foreground(Accent).Italic(true)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Disabled   = lipgloss.NewStyle().Foreground(TextDim)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Card frames a group of related values, e.g. a results stat.
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// Bar is the header and footer strip.
	Bar = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	Brand   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Status  = lipgloss.NewStyle().Foreground(Accent)
	Key     = lipgloss.NewStyle().Foreground(Text).Bold(true)
	KeyDesc = lipgloss.NewStyle().Foreground(TextDim)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressMissed = lipgloss.NewStyle().Background(Error)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Background(BgCard).Foreground(TextDim).Padding(0, 2)
)
