package nav

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the navigator's keyboard surface.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous page")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next page")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open page")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "more/less")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Toggle}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
