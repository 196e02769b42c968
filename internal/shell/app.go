package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/jask/sidenav/internal/nav"
)

const (
	sidebarMaxWidth = 32
	sidebarZone     = "shell-sidebar"
)

// App is the application shell hosting the page navigator. It owns the page
// list, the current page and everything the navigator asks it to do.
type App struct {
	nav      *nav.Model
	zones    *zone.Manager
	resolver nav.URLResolver
	log      *zap.Logger
	keys     keyMap
	help     help.Model

	pages              []nav.Page
	current            string
	basePath           string
	location           string
	hasSidebarElements bool
	sidebarElements    []string
	sidebarOpen        bool
	parentScrollOff    bool
	sidebar            viewport.Model
	status             string

	navOpts []nav.Option
	width   int
	height  int
}

// Option configures the shell.
type Option func(*App)

func WithBasePath(p string) Option { return func(a *App) { a.basePath = p } }
func WithCurrent(id string) Option { return func(a *App) { a.current = id } }
func WithResolver(r nav.URLResolver) Option {
	return func(a *App) { a.resolver = r }
}

// WithSidebarElements adds non-navigation content below the navigator.
func WithSidebarElements(lines ...string) Option {
	return func(a *App) {
		a.sidebarElements = lines
		a.hasSidebarElements = len(lines) > 0
	}
}

// WithNavOptions forwards options to the navigator, e.g. a device probe or a
// custom header table.
func WithNavOptions(opts ...nav.Option) Option {
	return func(a *App) { a.navOpts = append(a.navOpts, opts...) }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// New builds the shell around pages. The first page is current unless
// WithCurrent says otherwise.
func New(pages []nav.Page, opts ...Option) *App {
	a := &App{
		pages:       pages,
		basePath:    "/",
		resolver:    PathResolver{},
		log:         zap.NewNop(),
		keys:        newKeyMap(),
		help:        help.New(),
		zones:       zone.New(),
		sidebarOpen: true,
		sidebar:     viewport.New(0, 0),
	}
	if len(pages) > 0 {
		a.current = pages[0].ScriptID
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.resolver == nil {
		a.resolver = PathResolver{}
	}
	navOpts := append([]nav.Option{
		nav.WithResolver(a.resolver),
		nav.WithZones(a.zones),
		nav.WithLogger(a.log.Named("nav")),
	}, a.navOpts...)
	a.nav = nav.New(a, navOpts...)
	a.location = a.resolveCurrent()
	a.syncNav()
	return a
}

// OnPageChange switches the current page and re-renders the navigator.
func (a *App) OnPageChange(id string) {
	prev := a.current
	a.current = id
	a.location = a.resolveCurrent()
	a.status = "Opened " + a.currentLabel()
	a.log.Info("page change", zap.String("from", prev), zap.String("to", id), zap.String("location", a.location))
	a.syncNav()
}

// CollapseSidebar hides the sidebar until the user reopens it.
func (a *App) CollapseSidebar() {
	a.sidebarOpen = false
	a.log.Debug("sidebar collapsed")
	a.layout()
}

// HideParentScrollbar stops the sidebar itself from scrolling while the
// pointer is over the navigator's own scroll region.
func (a *App) HideParentScrollbar(suppress bool) {
	a.parentScrollOff = suppress
}

// SetPages replaces the page list, e.g. after the registry changes.
func (a *App) SetPages(pages []nav.Page) {
	a.pages = pages
	a.location = a.resolveCurrent()
	a.syncNav()
}

func (a *App) Current() string              { return a.current }
func (a *App) Location() string             { return a.location }
func (a *App) SidebarOpen() bool            { return a.sidebarOpen }
func (a *App) ParentScrollSuppressed() bool { return a.parentScrollOff }
func (a *App) Nav() *nav.Model              { return a.nav }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.layout()
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			a.zones.Close()
			return a, tea.Quit
		case key.Matches(m, a.keys.Sidebar):
			a.sidebarOpen = !a.sidebarOpen
			if !a.sidebarOpen {
				a.nav.PointerLeave()
			}
			a.layout()
		case key.Matches(m, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		default:
			if a.sidebarOpen {
				a.nav.Update(m)
			}
		}
	case tea.MouseMsg:
		if !a.sidebarOpen {
			break
		}
		a.nav.Update(m)
		if a.overSidebar(m) && !a.parentScrollOff {
			switch m.Button {
			case tea.MouseButtonWheelUp:
				a.sidebar.LineUp(1)
			case tea.MouseButtonWheelDown:
				a.sidebar.LineDown(1)
			}
		}
	}
	a.refreshSidebar()
	return a, nil
}

func (a *App) overSidebar(m tea.MouseMsg) bool {
	info := a.zones.Get(sidebarZone)
	return info != nil && !info.IsZero() && info.InBounds(m)
}

func (a *App) View() string {
	body := a.renderContent()
	if a.sidebarOpen && a.sidebarWidth() > 0 {
		side := a.zones.Mark(sidebarZone, sidebarStyle.Width(a.sidebarWidth()).Render(a.sidebar.View()))
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, body)
	}
	status := statusStyle.Render(a.status)
	out := lipgloss.JoinVertical(lipgloss.Left, body, status, a.help.View(a.keys))
	return a.zones.Scan(out)
}

func (a *App) renderContent() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.currentLabel()))
	b.WriteString("\n")
	loc := a.location
	if loc == "" {
		loc = "(no link)"
	}
	b.WriteString(mutedStyle.Render(loc))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d pages registered", len(a.pages))
	style := contentStyle
	if w := a.width - a.visibleSidebarWidth(); w > 0 {
		style = style.Width(w)
	}
	return style.Render(b.String())
}

// syncNav pushes the shell's current data into the navigator.
func (a *App) syncNav() {
	a.nav.SetProps(nav.Props{
		Pages:              a.pages,
		CurrentPage:        a.current,
		BasePath:           a.basePath,
		HasSidebarElements: a.hasSidebarElements,
	})
	a.refreshSidebar()
}

// layout sizes the navigator. With sidebar elements present the list gets
// half the sidebar, otherwise all of it.
func (a *App) layout() {
	body := a.bodyHeight()
	listHeight := body
	if a.hasSidebarElements {
		listHeight = body / 2
	}
	if listHeight < 1 {
		listHeight = 1
	}
	a.nav.SetSize(a.sidebarWidth()-sidebarStyle.GetHorizontalFrameSize(), listHeight)
	a.sidebar.Width = a.sidebarWidth()
	a.sidebar.Height = body
	a.refreshSidebar()
}

func (a *App) refreshSidebar() {
	parts := []string{a.nav.View()}
	if len(a.sidebarElements) > 0 {
		parts = append(parts, "", mutedStyle.Render(strings.Join(a.sidebarElements, "\n")))
	}
	a.sidebar.SetContent(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) bodyHeight() int {
	// status line and help line
	h := a.height - 2
	if h < 0 {
		return 0
	}
	return h
}

func (a *App) sidebarWidth() int {
	w := a.width / 3
	if w > sidebarMaxWidth {
		w = sidebarMaxWidth
	}
	return w
}

func (a *App) visibleSidebarWidth() int {
	if !a.sidebarOpen {
		return 0
	}
	return a.sidebarWidth()
}

func (a *App) resolveCurrent() string {
	for i, p := range a.pages {
		if p.ScriptID == a.current {
			return a.resolver.ResolveURL(a.basePath, p, i)
		}
	}
	return ""
}

func (a *App) currentLabel() string {
	for _, p := range a.pages {
		if p.ScriptID == a.current {
			return p.Label()
		}
	}
	return "No page"
}
