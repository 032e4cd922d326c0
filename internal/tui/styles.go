package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText   lipgloss.Color = "#cdd6f4"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorBorder lipgloss.Color = "#585b70"
	colorAccent lipgloss.Color = "#89b4fa"
	colorError  lipgloss.Color = "#f38ba8"
	colorMantle lipgloss.Color = "#181825"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent)
	rowStyle      = lipgloss.NewStyle().Foreground(colorText)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	listBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	fabStyle      = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 1)
	snackbarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorError).Padding(0, 1)
)
