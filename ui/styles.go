package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorPanel   = lipgloss.Color("#44475A")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle   = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
	totalStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	tabStyle      = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	activeTab     = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 1)
)
