package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubSize(t *testing.T, width int, err error) {
	t.Helper()
	prev := termGetSize
	termGetSize = func(int) (int, int, error) { return width, 24, err }
	t.Cleanup(func() { termGetSize = prev })
}

func noEnv(string) string { return "" }

func TestTerminalProbeWidth(t *testing.T) {
	cases := []struct {
		name  string
		width int
		err   error
		want  bool
	}{
		{"wide", 120, nil, false},
		{"threshold", 60, nil, false},
		{"narrow", 59, nil, true},
		{"unmeasurable", 0, errors.New("not a tty"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stubSize(t, tc.width, tc.err)
			p := &TerminalProbe{CompactWidth: 60, Getenv: noEnv}
			require.Equal(t, tc.want, p.IsMobile())
		})
	}
}

func TestTerminalProbeHandheldEnv(t *testing.T) {
	stubSize(t, 200, nil)
	p := &TerminalProbe{CompactWidth: 60, Getenv: func(k string) string {
		if k == "TERMUX_VERSION" {
			return "0.118"
		}
		return ""
	}}
	require.True(t, p.IsMobile())
}

func TestTerminalProbeQueriedEachCall(t *testing.T) {
	p := &TerminalProbe{CompactWidth: 60, Getenv: noEnv}
	stubSize(t, 100, nil)
	require.False(t, p.IsMobile())
	stubSize(t, 40, nil)
	require.True(t, p.IsMobile())
}

func TestNewTerminalProbeDefaults(t *testing.T) {
	p := NewTerminalProbe(0)
	require.Equal(t, DefaultCompactWidth, p.CompactWidth)
	require.NotNil(t, p.Getenv)
}

func TestStaticAndFunc(t *testing.T) {
	require.True(t, Static(true).IsMobile())
	require.False(t, Static(false).IsMobile())
	require.True(t, ProbeFunc(func() bool { return true }).IsMobile())
}
