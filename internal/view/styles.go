package view

import "github.com/charmbracelet/lipgloss"

// Content styles shared by the resolvers. The render loop's chrome has its
// own style set; these cover only the body content.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	statusStyles = map[string]lipgloss.Style{
		"REQUESTED": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"APPROVED":  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		"REJECTED":  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		"COMPLETED": lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	}
)

// errorPanel renders a bordered error card.
func errorPanel(message string) string {
	return cardStyle.
		BorderForeground(lipgloss.Color("196")).
		Render(errorStyle.Render(message))
}

// emptyState renders the explicit empty-list message. Lists never render as
// a bare empty container.
func emptyState(message string) string {
	return emptyStyle.Render(message)
}

// statusBadge renders a booking status with its lifecycle color. Statuses
// outside the client's lifecycle render unstyled, verbatim.
func statusBadge(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}
