package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fitness-tracker/internal/training"
)

// Colors
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light gray
)

// Styles
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(16)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)
)

// RenderMetric renders a metric label and its value on one line
func RenderMetric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
	)
}

// Card renders the workout summary as a bordered card
func Card(info training.InfoMessage, u Units) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render(info.TrainingType),
		RenderMetric("Длительность", fmt.Sprintf("%.3f h", info.Duration)),
		RenderMetric("Дистанция", u.FormatDistance(info.Distance)),
		RenderMetric("Ср. скорость", u.FormatSpeed(info.Speed)),
		RenderMetric("Потрачено ккал", fmt.Sprintf("%.3f", info.Calories)),
	)
	return cardStyle.Render(body)
}
