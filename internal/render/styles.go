package render

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("208") // Orange
	colorMuted  = lipgloss.Color("241") // Gray
	colorHot    = lipgloss.Color("196") // Red
	colorCalm   = lipgloss.Color("78")  // Green
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorAccent).
	MarginBottom(1)

var sectionStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true).
	MarginTop(1)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorAccent)

var summaryStyle = lipgloss.NewStyle().Bold(true)

var mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

var warnStyle = lipgloss.NewStyle().
	Foreground(colorHot).
	Bold(true)

var labelStyle = lipgloss.NewStyle().
	Width(14).
	Foreground(colorMuted)

// scoreStyle colors a 1–5 value from calm to hot.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 4:
		return lipgloss.NewStyle().Bold(true).Foreground(colorHot)
	case score <= 2:
		return lipgloss.NewStyle().Bold(true).Foreground(colorCalm)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	}
}
