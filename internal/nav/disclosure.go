package nav

// Disclosure is the collapsed/expanded state of an overflowing list.
type Disclosure int

const (
	Collapsed Disclosure = iota
	Expanded
)

func (d Disclosure) String() string {
	if d == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// State holds the manual disclosure flag for one mounted navigator.
//
// A stored Expanded survives overflow clearing; it only has a visible effect
// while the list overflows.
type State struct {
	expanded bool
}

// Toggle applies one user toggle. Opening requires overflow; closing never
// does.
func (s *State) Toggle(overflowing bool) Disclosure {
	switch {
	case s.expanded:
		s.expanded = false
	case overflowing:
		s.expanded = true
	}
	return s.Stored()
}

// Stored returns the raw flag regardless of overflow.
func (s State) Stored() Disclosure {
	if s.expanded {
		return Expanded
	}
	return Collapsed
}

// Visible returns what the user actually sees.
func (s State) Visible(overflowing bool) Disclosure {
	if s.expanded && overflowing {
		return Expanded
	}
	return Collapsed
}

// Reset returns the state to its initial value, as on remount.
func (s *State) Reset() {
	s.expanded = false
}
