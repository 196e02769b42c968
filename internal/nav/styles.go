package nav

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
)

// Styles controls how rows are drawn. Layout never depends on it.
type Styles struct {
	Item      lipgloss.Style
	Active    lipgloss.Style
	Cursor    lipgloss.Style
	Disabled  lipgloss.Style
	Header    lipgloss.Style
	Toggle    lipgloss.Style
	Container lipgloss.Style
}

// DefaultStyles returns the stock theme.
func DefaultStyles() Styles {
	return Styles{
		Item:      lipgloss.NewStyle().Foreground(colorText).PaddingLeft(1),
		Active:    lipgloss.NewStyle().Foreground(colorPink).Background(colorSurface0).Bold(true).PaddingLeft(1),
		Cursor:    lipgloss.NewStyle().Foreground(colorLavender).PaddingLeft(1),
		Disabled:  lipgloss.NewStyle().Foreground(colorOverlay0).Faint(true).PaddingLeft(1),
		Header:    lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true),
		Toggle:    lipgloss.NewStyle().Foreground(colorSubtext0).Align(lipgloss.Center),
		Container: lipgloss.NewStyle(),
	}
}
