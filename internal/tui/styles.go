package tui

import (
	"github.com/charmbracelet/lipgloss"

	"appreview/internal/models"
)

// Palette uses ANSI 256 colors.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	averageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
	starsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))
	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusStyles = map[models.ReviewStatus]lipgloss.Style{
		models.Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.Approved: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.Rejected: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
)

func statusLabel(status models.ReviewStatus) string {
	return statusStyles[status].Render(string(status))
}
