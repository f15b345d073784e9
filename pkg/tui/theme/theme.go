// Package theme centralizes Lip Gloss styles for the calendar UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"
)

// Theme groups the styles used across the calendar views.
type Theme struct {
	Header   HeaderTheme
	Month    MonthTheme
	Timeline TimelineTheme
	Footer   FooterTheme
}

// HeaderTheme styles the title bar and view switcher.
type HeaderTheme struct {
	Title        lipgloss.Style
	ViewActive   lipgloss.Style
	ViewInactive lipgloss.Style
	Hint         lipgloss.Style
}

// MonthTheme styles the month grid cells.
type MonthTheme struct {
	Weekday    lipgloss.Style
	Sunday     lipgloss.Style
	Saturday   lipgloss.Style
	Day        lipgloss.Style
	OutOfMonth lipgloss.Style
	Today      lipgloss.Style
	Selected   lipgloss.Style
	Marked     lipgloss.Style
	Overflow   lipgloss.Style
}

// TimelineTheme styles the week and day timelines.
type TimelineTheme struct {
	HourLabel lipgloss.Style
	GridLine  lipgloss.Style
	NowLine   lipgloss.Style
	Pending   lipgloss.Style
	Store     lipgloss.Style
}

// FooterTheme styles the status/help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme. The dim shades back off a little on
// light terminal backgrounds.
func Default() Theme {
	faint := lipgloss.Color("244")
	if !termenv.HasDarkBackground() {
		faint = lipgloss.Color("245")
	}

	return Theme{
		Header: HeaderTheme{
			Title:        lipgloss.NewStyle().Bold(true),
			ViewActive:   lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
			ViewInactive: lipgloss.NewStyle().Foreground(faint).Padding(0, 1),
			Hint:         lipgloss.NewStyle().Foreground(faint),
		},
		Month: MonthTheme{
			Weekday:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Sunday:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Saturday:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			Day:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			OutOfMonth: lipgloss.NewStyle().Foreground(faint),
			Today:      lipgloss.NewStyle().Underline(true).Bold(true),
			Selected:   lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Marked:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
			Overflow:   lipgloss.NewStyle().Foreground(faint),
		},
		Timeline: TimelineTheme{
			HourLabel: lipgloss.NewStyle().Foreground(faint),
			GridLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			NowLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Italic(true),
			Store:     lipgloss.NewStyle().Foreground(faint),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(faint),
		},
	}
}

// Staff returns the accent style for a staff member's hex color.
func Staff(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// StaffBlock returns the filled style used for timeline blocks.
func StaffBlock(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("231"))
}
