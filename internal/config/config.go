package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/sidenav/internal/nav"
)

// ErrInvalidHeaderIndex is returned when a nav.headers key is not a
// non-negative integer.
var ErrInvalidHeaderIndex = errors.New("invalid header index")

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Nav      NavConfig
	Device   DeviceConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	Level string
	File  string
}

// NavConfig holds navigator settings.
type NavConfig struct {
	BasePath           string            `mapstructure:"base_path"`
	HasSidebarElements bool              `mapstructure:"has_sidebar_elements"`
	Headers            map[string]string `mapstructure:"headers"`
}

// DeviceConfig holds form-factor detection settings.
type DeviceConfig struct {
	CompactWidth int  `mapstructure:"compact_width"`
	ForceMobile  bool `mapstructure:"force_mobile"`
}

// HeaderMap converts the configured header table. An empty table yields the
// stock layout.
func (n NavConfig) HeaderMap() (nav.HeaderMap, error) {
	if len(n.Headers) == 0 {
		return nav.DefaultHeaders(), nil
	}
	out := make(nav.HeaderMap, len(n.Headers))
	for k, label := range n.Headers {
		idx, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("nav.headers %q: %w", k, ErrInvalidHeaderIndex)
		}
		out[idx] = label
	}
	return out, nil
}

func configPath() string {
	if p := os.Getenv("SIDENAV_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "sidenav", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SIDENAV_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("SIDENAV_CONFIG"))
}

// LoadFile reads configuration from path, or from the default search path
// when path is empty. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "sidenav", "sidenav.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("nav.base_path", "/")
	v.SetDefault("nav.has_sidebar_elements", true)
	v.SetDefault("device.compact_width", 60)
	v.SetDefault("device.force_mobile", false)

	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sidenav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIDENAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.Nav.HeaderMap(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	return SaveFile(configPath(), cfg)
}

// SaveFile writes cfg as TOML to path.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("nav.base_path", cfg.Nav.BasePath)
	v.Set("nav.has_sidebar_elements", cfg.Nav.HasSidebarElements)
	if len(cfg.Nav.Headers) > 0 {
		v.Set("nav.headers", cfg.Nav.Headers)
	}
	v.Set("device.compact_width", cfg.Device.CompactWidth)
	v.Set("device.force_mobile", cfg.Device.ForceMobile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
