package browse

import (
	"github.com/charmbracelet/lipgloss"
)

// ModelView renders the browser model's view as a string.
func ModelView(m model) string {
	if m.quitting {
		return ""
	}
	if len(m.list.Items()) == 0 {
		return emptyView(m)
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(0, 1).
		Render(m.list.View())
}

func emptyView(m model) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	return lipgloss.NewStyle().Padding(1).BorderStyle(lipgloss.RoundedBorder()).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.list.Title),
			"",
			hintStyle.Render("Nothing to browse. Press q to quit."),
		),
	)
}
