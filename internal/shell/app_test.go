package shell

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/sidenav/internal/device"
	"github.com/jask/sidenav/internal/nav"
)

func testPages(n int) []nav.Page {
	pages := make([]nav.Page, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, nav.Page{ScriptID: fmt.Sprintf("p%d", i), DisplayName: fmt.Sprintf("Page_%d", i)})
	}
	return pages
}

func sized(a *App, w, h int) *App {
	a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return a
}

func TestAppStartsOnFirstPage(t *testing.T) {
	a := New(testPages(3), WithBasePath("/app"))
	require.Equal(t, "p0", a.Current())
	require.Equal(t, "/app", a.Location())
	require.Equal(t, 0, nav.ActiveRow(a.Nav().Rows()))
}

func TestAppClickChangesPage(t *testing.T) {
	a := sized(New(testPages(4), WithBasePath("/app")), 90, 30)
	// rows: p0, header, p1, p2, header, p3
	require.True(t, a.Nav().Click(3))
	require.Equal(t, "p2", a.Current())
	require.Equal(t, "/app/page-2", a.Location())
	require.Equal(t, 3, nav.ActiveRow(a.Nav().Rows()), "navigator re-rendered with the new current page")
	require.True(t, a.SidebarOpen(), "desktop keeps the sidebar open")
}

func TestAppMobileClickCollapsesSidebar(t *testing.T) {
	a := sized(New(testPages(4), WithNavOptions(nav.WithDeviceProbe(device.Static(true)))), 50, 30)
	require.True(t, a.Nav().Click(2))
	require.Equal(t, "p1", a.Current())
	require.False(t, a.SidebarOpen())
}

func TestAppKeyboardSelectThroughShell(t *testing.T) {
	a := sized(New(testPages(3)), 90, 30)
	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "p1", a.Current())
}

func TestAppTabTogglesSidebar(t *testing.T) {
	a := sized(New(testPages(3)), 90, 30)
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, a.SidebarOpen())

	// keys do not reach the navigator while it is hidden
	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "p0", a.Current())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, a.SidebarOpen())
}

func TestAppNavigatorStateSurvivesRerender(t *testing.T) {
	a := sized(New(testPages(10), WithSidebarElements("Filters", "Account")), 90, 12)
	require.True(t, a.Nav().Overflowing())
	require.True(t, a.Nav().ToggleVisible())
	a.Nav().Toggle()
	require.True(t, a.Nav().Expanded())

	a.Nav().Click(2)
	require.True(t, a.Nav().Expanded(), "page changes must not reset disclosure")
}

func TestAppWithoutSidebarElementsGivesListFullHeight(t *testing.T) {
	a := sized(New(testPages(10)), 90, 20)
	require.False(t, a.Nav().Overflowing())
	require.False(t, a.Nav().ToggleVisible())
}

func TestAppHideParentScrollbar(t *testing.T) {
	a := sized(New(testPages(10), WithSidebarElements("Filters")), 90, 12)
	a.Nav().PointerEnter()
	require.True(t, a.ParentScrollSuppressed())
	a.Nav().PointerLeave()
	require.False(t, a.ParentScrollSuppressed())
}

// render draws a frame and waits for the zone worker to publish ids.
func render(t *testing.T, a *App, ids ...string) {
	t.Helper()
	a.View()
	require.Eventually(t, func() bool {
		for _, id := range ids {
			if a.zones.Get(id).IsZero() {
				return false
			}
		}
		return true
	}, time.Second, 5*time.Millisecond)
}

func TestAppMouseOverNavigatorSuppressesSidebarWheel(t *testing.T) {
	elements := make([]string, 10)
	for i := range elements {
		elements[i] = fmt.Sprintf("Element %d", i)
	}
	a := sized(New(testPages(10), WithSidebarElements(elements...)), 90, 12)
	require.True(t, a.Nav().Overflowing())
	render(t, a, a.Nav().ContainerID(), sidebarZone)

	navZone := a.zones.Get(a.Nav().ContainerID())
	a.Update(tea.MouseMsg{X: navZone.StartX + 1, Y: navZone.StartY, Action: tea.MouseActionMotion})
	require.True(t, a.Nav().Hovering())
	require.True(t, a.ParentScrollSuppressed())

	a.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Zero(t, a.sidebar.YOffset, "sidebar must not scroll under the navigator")

	a.Update(tea.MouseMsg{X: 60, Y: 2, Action: tea.MouseActionMotion})
	require.False(t, a.Nav().Hovering())
	require.False(t, a.ParentScrollSuppressed())

	// sidebar elements sit below the navigator's six lines
	a.Update(tea.MouseMsg{X: 2, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Equal(t, 1, a.sidebar.YOffset)
}

func TestAppMouseClickAndToggle(t *testing.T) {
	a := sized(New(testPages(10), WithSidebarElements("Filters", "Account")), 90, 12)
	render(t, a, a.Nav().ItemID(2), a.Nav().ToggleID())

	item := a.zones.Get(a.Nav().ItemID(2))
	a.Update(tea.MouseMsg{X: item.StartX + 15, Y: item.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, "p1", a.Current())
	require.Equal(t, "/page-1", a.Location())
	require.True(t, a.SidebarOpen())

	toggle := a.zones.Get(a.Nav().ToggleID())
	a.Update(tea.MouseMsg{X: toggle.StartX, Y: toggle.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, a.Nav().Expanded())
	require.Equal(t, "p1", a.Current())
}

func TestAppViewRendersSidebarAndContent(t *testing.T) {
	a := sized(New(testPages(3), WithBasePath("/app")), 90, 20)
	view := a.View()
	require.Contains(t, view, "Page 1")
	require.Contains(t, view, "Discover Targets")
	require.Contains(t, view, "/app")
}

func TestAppSinglePageHidesNavigator(t *testing.T) {
	a := sized(New(testPages(1)), 90, 20)
	require.Empty(t, a.Nav().View())
	require.Empty(t, a.Nav().Rows())
}

func TestAppSetPagesUnknownCurrent(t *testing.T) {
	a := New(testPages(3))
	a.OnPageChange("gone")
	require.Equal(t, "", a.Location())
	require.Equal(t, -1, nav.ActiveRow(a.Nav().Rows()))

	a.SetPages(append(testPages(3), nav.Page{ScriptID: "gone", DisplayName: "Back"}))
	require.Equal(t, "/back", a.Location())
}

func TestAppQuit(t *testing.T) {
	a := New(testPages(2))
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
