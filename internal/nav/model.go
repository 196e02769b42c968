package nav

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// Model is one mounted navigator. Its disclosure state lives until the host
// discards the model or calls Reset; everything else is rebuilt from Props.
type Model struct {
	host     Host
	resolver URLResolver
	device   DeviceProbe
	headers  HeaderMap
	zones    *zone.Manager
	prefix   string
	keys     KeyMap
	styles   Styles
	log      *zap.Logger

	props    Props
	rows     []Row
	state    State
	overflow Overflow
	hovering bool
	cursor   int

	// starts[i] is the first rendered line of row i; the final entry is the
	// total line count.
	starts []int

	width  int
	height int
	vp     viewport.Model
}

// Option configures a Model at construction.
type Option func(*Model)

func WithResolver(r URLResolver) Option { return func(m *Model) { m.resolver = r } }
func WithDeviceProbe(d DeviceProbe) Option {
	return func(m *Model) { m.device = d }
}
func WithHeaders(h HeaderMap) Option { return func(m *Model) { m.headers = h } }
func WithKeyMap(k KeyMap) Option     { return func(m *Model) { m.keys = k } }
func WithStyles(s Styles) Option     { return func(m *Model) { m.styles = s } }

// WithZones enables mouse hit-testing. The host must run zones.Scan over the
// final frame.
func WithZones(z *zone.Manager) Option { return func(m *Model) { m.zones = z } }

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New mounts a navigator that reports intents to host.
func New(host Host, opts ...Option) *Model {
	m := &Model{
		host:    host,
		headers: DefaultHeaders(),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		log:     zap.NewNop(),
		cursor:  -1,
		vp:      viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.zones != nil {
		m.prefix = m.zones.NewPrefix()
	}
	return m
}

// SetProps supplies the host's data for the next render and re-measures.
func (m *Model) SetProps(p Props) {
	m.props = p
	m.rows = BuildRows(p.Pages, p.CurrentPage, p.BasePath, m.headers, m.resolver)
	if !m.isPageRow(m.cursor) {
		m.cursor = ActiveRow(m.rows)
		if m.cursor < 0 {
			m.cursor = m.nextPageRow(-1, 1)
		}
	}
	m.relayout()
}

// SetSize assigns the list viewport. The toggle affordance, when shown, is
// drawn on an extra line below it.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.relayout()
}

func (m *Model) relayout() {
	content := m.renderRows()
	lines := 0
	if content != "" {
		lines = lipgloss.Height(content)
	}
	was := m.overflow.Overflowing()
	now := m.overflow.Measure(lines, m.height)
	if was != now {
		m.log.Debug("nav overflow changed",
			zap.Bool("overflowing", now),
			zap.Int("content", lines),
			zap.Int("viewport", m.height),
		)
	}
	m.vp.Width = m.width
	m.vp.Height = m.height
	m.vp.SetContent(content)
	m.followCursor()
}

// Reset returns the navigator to its freshly mounted state.
func (m *Model) Reset() {
	m.state.Reset()
	m.hovering = false
	m.cursor = ActiveRow(m.rows)
	if m.cursor < 0 {
		m.cursor = m.nextPageRow(-1, 1)
	}
	m.vp.GotoTop()
	m.relayout()
}

func (m *Model) Rows() []Row       { return m.rows }
func (m *Model) Props() Props      { return m.props }
func (m *Model) Overflowing() bool { return m.overflow.Overflowing() }
func (m *Model) Hovering() bool    { return m.hovering }
func (m *Model) Cursor() int       { return m.cursor }
func (m *Model) KeyMap() KeyMap    { return m.keys }
func (m *Model) Disclosure() Disclosure {
	return m.state.Visible(m.overflow.Overflowing())
}

// Expanded reports the visible disclosure.
func (m *Model) Expanded() bool { return m.Disclosure() == Expanded }

// StoredExpanded reports the raw flag, which may outlive the overflow that
// made it meaningful.
func (m *Model) StoredExpanded() bool { return m.state.Stored() == Expanded }

// ToggleVisible reports whether the more/less affordance is drawn.
func (m *Model) ToggleVisible() bool {
	return len(m.rows) > 0 && m.props.HasSidebarElements && m.overflow.Overflowing()
}

// Toggle flips the disclosure. Opening a list that does not overflow is a
// no-op.
func (m *Model) Toggle() Disclosure {
	before := m.state.Stored()
	after := m.state.Toggle(m.overflow.Overflowing())
	if before != after {
		m.log.Debug("nav disclosure", zap.Stringer("from", before), zap.Stringer("to", after))
	}
	m.relayout()
	return m.Disclosure()
}

// PointerEnter asks the host to suppress parent scrolling while the list has
// its own scroll region.
func (m *Model) PointerEnter() {
	m.hovering = true
	if m.overflow.Overflowing() && m.host != nil {
		m.host.HideParentScrollbar(true)
	}
}

// PointerLeave always releases parent scrolling.
func (m *Model) PointerLeave() {
	m.hovering = false
	if m.host != nil {
		m.host.HideParentScrollbar(false)
	}
}

// Click dispatches a page change for the row at index. Rows are read at call
// time, and the target is captured before the host runs, since the host may
// re-render the navigator synchronously. It reports whether the click was
// consumed.
func (m *Model) Click(index int) bool {
	if index < 0 || index >= len(m.rows) {
		return false
	}
	row := m.rows[index]
	if !row.Navigable() {
		return false
	}
	id := row.ScriptID
	mobile := m.device != nil && m.device.IsMobile()
	m.cursor = index
	m.log.Debug("nav page change", zap.String("page", id), zap.String("url", row.URL), zap.Bool("mobile", mobile))
	if m.host == nil {
		return true
	}
	m.host.OnPageChange(id)
	if mobile {
		m.host.CollapseSidebar()
	}
	return true
}

// Update handles keyboard and mouse input routed to the navigator by the host.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Select):
			m.Click(m.cursor)
		case key.Matches(msg, m.keys.Toggle):
			if m.ToggleVisible() {
				m.Toggle()
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.zones == nil {
		return
	}
	inside := m.inZone(m.ContainerID(), msg)
	switch {
	case inside && !m.hovering:
		m.PointerEnter()
	case !inside && m.hovering:
		m.PointerLeave()
	}
	if !inside {
		return
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if m.clipped() {
			m.vp.LineUp(1)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if m.clipped() {
			m.vp.LineDown(1)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.ToggleVisible() && m.inZone(m.ToggleID(), msg) {
			m.Toggle()
			return
		}
		for i, row := range m.rows {
			if row.Kind != RowPage {
				continue
			}
			if m.inZone(m.ItemID(i), msg) {
				m.Click(i)
				return
			}
		}
	}
}

func (m *Model) inZone(id string, msg tea.MouseMsg) bool {
	info := m.zones.Get(id)
	return info != nil && !info.IsZero() && info.InBounds(msg)
}

// ContainerID, ItemID, HeaderID and ToggleID are the structural markers the
// host and its styling layer hit-test against. They are unique per mounted
// model.
func (m *Model) ContainerID() string { return m.prefix + "nav" }
func (m *Model) ItemID(row int) string {
	return m.prefix + "nav-item-" + strconv.Itoa(row)
}
func (m *Model) HeaderID(row int) string {
	return m.prefix + "nav-header-" + strconv.Itoa(row)
}
func (m *Model) ToggleID() string { return m.prefix + "nav-toggle" }

func (m *Model) clipped() bool {
	return m.overflow.Overflowing() && !m.Expanded()
}

func (m *Model) isPageRow(i int) bool {
	return i >= 0 && i < len(m.rows) && m.rows[i].Kind == RowPage
}

func (m *Model) nextPageRow(from, delta int) int {
	for i := from + delta; i >= 0 && i < len(m.rows); i += delta {
		if m.rows[i].Kind == RowPage {
			return i
		}
	}
	return -1
}

func (m *Model) moveCursor(delta int) {
	if next := m.nextPageRow(m.cursor, delta); next >= 0 {
		m.cursor = next
		m.vp.SetContent(m.renderRows())
		m.followCursor()
	}
}

// followCursor scrolls the clipped viewport so the cursor row stays visible.
// Headers directly above the cursor are pulled in with it. Offsets are in
// rendered lines, so a row whose label spans several lines is kept whole.
func (m *Model) followCursor() {
	if !m.clipped() || m.cursor < 0 || m.cursor+1 >= len(m.starts) {
		return
	}
	top := m.cursor
	if top > 0 && m.rows[top-1].Kind == RowHeader {
		top--
	}
	first, end := m.starts[top], m.starts[m.cursor+1]
	switch {
	case first < m.vp.YOffset:
		m.vp.SetYOffset(first)
	case end > m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(end - m.vp.Height)
	}
}
