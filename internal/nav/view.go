package nav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	caretDown = "▾"
	caretUp   = "▴"
)

// View draws the navigator. Fewer than two pages draw nothing at all.
func (m *Model) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var body string
	if m.clipped() {
		body = m.vp.View()
	} else {
		body = m.renderRows()
	}
	if m.ToggleVisible() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderToggle())
	}
	body = m.styles.Container.Render(body)
	return m.mark(m.ContainerID(), body)
}

// renderRows draws every row and records where each one starts.
func (m *Model) renderRows() string {
	m.starts = m.starts[:0]
	if len(m.rows) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.rows))
	line := 0
	for i, row := range m.rows {
		r := m.renderRow(i, row)
		m.starts = append(m.starts, line)
		line += lipgloss.Height(r)
		lines = append(lines, r)
	}
	m.starts = append(m.starts, line)
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(i int, row Row) string {
	if row.Kind == RowHeader {
		return m.mark(m.HeaderID(i), m.pad(m.fit(m.styles.Header).Render(row.Label)))
	}
	text := row.Label
	if row.Icon != "" {
		text = row.Icon + " " + text
	}
	style := m.styles.Item
	switch {
	case !row.Navigable():
		style = m.styles.Disabled
	case row.Active:
		style = m.styles.Active
	case i == m.cursor:
		style = m.styles.Cursor
	}
	line := m.pad(m.fit(style).Render(text))
	if !row.Navigable() {
		return line
	}
	return m.mark(m.ItemID(i), line)
}

func (m *Model) renderToggle() string {
	caret := caretDown
	label := "View more"
	if m.Expanded() {
		caret = caretUp
		label = "View less"
	}
	style := m.styles.Toggle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return m.mark(m.ToggleID(), style.Render(label+" "+caret))
}

func (m *Model) fit(style lipgloss.Style) lipgloss.Style {
	if m.width <= 0 {
		return style
	}
	return style.MaxWidth(m.width)
}

// pad fills a rendered row out to the full list width so its marker covers
// the whole line, not just the label.
func (m *Model) pad(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, s)
}

func (m *Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}
