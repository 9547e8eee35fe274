package tui

import "github.com/charmbracelet/lipgloss"

// Nightfox-derived palette.
const (
	colorSurface = "#192330"
	colorText    = "#cdcecf"
	colorFaint   = "#71839b"
	colorAccent  = "#719cd6"
	colorWarning = "#dbc074"
	colorDanger  = "#c94f6d"
)

type styles struct {
	Title   lipgloss.Style
	Faint   lipgloss.Style
	Accent  lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Match   lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorText)).
			Background(lipgloss.Color(colorSurface)),
		Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorFaint)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorDanger)),
		Match: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSurface)).
			Background(lipgloss.Color(colorWarning)),
	}
}
