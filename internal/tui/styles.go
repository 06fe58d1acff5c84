package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles for the program chrome. Body content
// arrives pre-styled from the view resolvers.
type Styles struct {
	Title    lipgloss.Style
	Nav      lipgloss.Style
	NavKey   lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Cursor   lipgloss.Style
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// DefaultStyles returns the default chrome styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1),
		Nav: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginBottom(1),
		NavKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")),
		Notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Cursor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
