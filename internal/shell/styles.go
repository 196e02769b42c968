package shell

import "github.com/charmbracelet/lipgloss"

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSubtext0 lipgloss.Color = "#a6adc8"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	statusStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	contentStyle = lipgloss.NewStyle().PaddingLeft(2)
	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorSurface1)
)
