package nav

import (
	"sort"
	"strings"
)

// Page is a navigable target supplied by the host. It is never mutated here.
type Page struct {
	ScriptID    string
	DisplayName string
	Icon        string
}

// Label returns the display name with every underscore rendered as a space.
func (p Page) Label() string {
	return strings.ReplaceAll(p.DisplayName, "_", " ")
}

// HasIcon reports whether the page carries an icon. Any non-empty string
// counts, including one made of spaces.
func (p Page) HasIcon() bool {
	return p.Icon != ""
}

// HeaderMap places section headers before the page at a given zero-based
// index. Placement is positional only; page content is never consulted.
type HeaderMap map[int]string

// DefaultHeaders returns the stock section layout.
func DefaultHeaders() HeaderMap {
	return HeaderMap{
		1: "Discover Targets",
		3: "Research Tools",
		6: "Build Pitches",
		9: "Administration",
	}
}

// Indices returns the configured header positions in ascending order.
func (h HeaderMap) Indices() []int {
	out := make([]int, 0, len(h))
	for idx := range h {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// InRange counts the headers that land inside a list of n pages.
func (h HeaderMap) InRange(n int) int {
	count := 0
	for idx := range h {
		if idx >= 0 && idx < n {
			count++
		}
	}
	return count
}
