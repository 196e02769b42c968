package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/sidenav/internal/nav"
)

func TestLoadFileDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "/", cfg.Nav.BasePath)
	require.True(t, cfg.Nav.HasSidebarElements)
	require.Equal(t, 60, cfg.Device.CompactWidth)
	require.Equal(t, "info", cfg.Log.Level)

	headers, err := cfg.Nav.HeaderMap()
	require.NoError(t, err)
	require.Equal(t, nav.DefaultHeaders(), headers)
}

func TestLoadFileReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[database]
path = "/tmp/nav.db"

[nav]
base_path = "/workspace"
has_sidebar_elements = false

[nav.headers]
"0" = "Start"
"2" = "More"

[device]
compact_width = 80
force_mobile = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/nav.db", cfg.Database.Path)
	require.Equal(t, "/workspace", cfg.Nav.BasePath)
	require.False(t, cfg.Nav.HasSidebarElements)
	require.Equal(t, 80, cfg.Device.CompactWidth)
	require.True(t, cfg.Device.ForceMobile)

	headers, err := cfg.Nav.HeaderMap()
	require.NoError(t, err)
	require.Equal(t, nav.HeaderMap{0: "Start", 2: "More"}, headers)
}

func TestLoadFileRejectsBadHeaderIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[nav.headers]\nfirst = \"Nope\"\n"), 0o644))
	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidHeaderIndex)
}

func TestHeaderMapRejectsNegative(t *testing.T) {
	_, err := NavConfig{Headers: map[string]string{"-1": "x"}}.HeaderMap()
	require.ErrorIs(t, err, ErrInvalidHeaderIndex)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SIDENAV_NAV_BASE_PATH", "/from-env")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "/from-env", cfg.Nav.BasePath)
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	in := Config{
		Database: DatabaseConfig{Path: "/data/pages.db"},
		Log:      LogConfig{Level: "debug", File: "/tmp/sidenav.log"},
		Nav:      NavConfig{BasePath: "/x", HasSidebarElements: true},
		Device:   DeviceConfig{CompactWidth: 72},
	}
	require.NoError(t, SaveFile(path, in))

	out, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, in.Database, out.Database)
	require.Equal(t, in.Log, out.Log)
	require.Equal(t, "/x", out.Nav.BasePath)
	require.Equal(t, 72, out.Device.CompactWidth)
}
