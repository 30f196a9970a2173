package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")
	colorPanel   = lipgloss.Color("#44475A")
	colorBarText = lipgloss.Color("#282A36")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle   = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
)

// barStyle renders bar fill: label text on the priority color.
func barStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Foreground(colorBarText)
}

// swatchStyle renders a legend swatch in the priority color.
func swatchStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
