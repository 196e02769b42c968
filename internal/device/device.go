// Package device classifies the terminal the program is running in.
package device

import (
	"os"

	"golang.org/x/term"
)

// DefaultCompactWidth is the column count below which a terminal is treated
// as a handheld form factor.
const DefaultCompactWidth = 60

// Probe reports whether the runtime looks like a mobile/touch device.
type Probe interface {
	IsMobile() bool
}

// ProbeFunc adapts a function to Probe.
type ProbeFunc func() bool

func (f ProbeFunc) IsMobile() bool { return f() }

// Static always answers the same way.
type Static bool

func (s Static) IsMobile() bool { return bool(s) }

// handheldEnv lists variables set by terminal apps that only run on phones
// and tablets.
var handheldEnv = []string{"TERMUX_VERSION", "ISH_VERSION", "BLINK_VERSION"}

var termGetSize = term.GetSize

// TerminalProbe inspects the controlling terminal on every call.
type TerminalProbe struct {
	CompactWidth int
	FD           int
	Getenv       func(string) string
}

// NewTerminalProbe probes stdout with the given compact threshold.
// A threshold <= 0 uses DefaultCompactWidth.
func NewTerminalProbe(compactWidth int) *TerminalProbe {
	if compactWidth <= 0 {
		compactWidth = DefaultCompactWidth
	}
	return &TerminalProbe{
		CompactWidth: compactWidth,
		FD:           int(os.Stdout.Fd()),
		Getenv:       os.Getenv,
	}
}

// IsMobile is true inside a handheld terminal app, or when the terminal is
// narrower than CompactWidth. An unmeasurable terminal counts as desktop.
func (p *TerminalProbe) IsMobile() bool {
	getenv := p.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, name := range handheldEnv {
		if getenv(name) != "" {
			return true
		}
	}
	width, _, err := termGetSize(p.FD)
	if err != nil || width <= 0 {
		return false
	}
	return width < p.CompactWidth
}
