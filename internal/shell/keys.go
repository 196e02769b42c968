package shell

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/sidenav/internal/nav"
)

type keyMap struct {
	Quit    key.Binding
	Sidebar key.Binding
	Help    key.Binding
	nav     nav.KeyMap
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		nav:     nav.DefaultKeyMap(),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sidebar, k.nav.Select, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.nav.ShortHelp(),
		{k.Sidebar, k.Help, k.Quit},
	}
}
