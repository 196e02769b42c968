package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/sidenav/internal/config"
	"github.com/jask/sidenav/internal/database"
	"github.com/jask/sidenav/internal/database/repository"
	"github.com/jask/sidenav/internal/device"
	"github.com/jask/sidenav/internal/logging"
	"github.com/jask/sidenav/internal/nav"
	"github.com/jask/sidenav/internal/shell"
)

var (
	cfgFile     string
	forceMobile bool
)

var rootCmd = &cobra.Command{
	Use:          "sidenav",
	Short:        "Terminal application shell with a sectioned page navigator",
	SilenceUsage: true,
	RunE:         runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default $SIDENAV_CONFIG or ~/.config/sidenav/config.toml)")
	rootCmd.Flags().BoolVar(&forceMobile, "mobile", false, "treat the terminal as a handheld device")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load()
}

// openRegistry prepares the page database and returns its pages in order.
func openRegistry(ctx context.Context, cfg config.Config) (*sql.DB, []nav.Page, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}
	rows, err := repository.NewPageRepo(db).List(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("list pages: %w", err)
	}
	return db, toNavPages(rows), nil
}

func toNavPages(rows []repository.Page) []nav.Page {
	out := make([]nav.Page, 0, len(rows))
	for _, r := range rows {
		p := nav.Page{ScriptID: r.ScriptID, DisplayName: r.DisplayName}
		if r.Icon != nil {
			p.Icon = *r.Icon
		}
		out = append(out, p)
	}
	return out
}

func probeFor(cfg config.Config) nav.DeviceProbe {
	if forceMobile || cfg.Device.ForceMobile {
		return device.Static(true)
	}
	return device.NewTerminalProbe(cfg.Device.CompactWidth)
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	headers, err := cfg.Nav.HeaderMap()
	if err != nil {
		return err
	}

	db, pages, err := openRegistry(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("pages loaded", zap.Int("count", len(pages)), zap.String("db", cfg.Database.Path))

	opts := []shell.Option{
		shell.WithBasePath(cfg.Nav.BasePath),
		shell.WithLogger(logger),
		shell.WithNavOptions(
			nav.WithHeaders(headers),
			nav.WithDeviceProbe(probeFor(cfg)),
		),
	}
	if cfg.Nav.HasSidebarElements {
		opts = append(opts, shell.WithSidebarElements(
			"Workspace: "+filepath.Base(cfg.Database.Path),
			"tab  hide sidebar",
		))
	}

	p := tea.NewProgram(shell.New(pages, opts...), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
