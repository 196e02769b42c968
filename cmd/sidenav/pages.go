package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/sidenav/internal/database/repository"
	"github.com/jask/sidenav/internal/nav"
	"github.com/jask/sidenav/internal/shell"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Print the page registry in navigator order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		headers, err := cfg.Nav.HeaderMap()
		if err != nil {
			return err
		}
		db, pages, err := openRegistry(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		writePages(cmd.OutOrStdout(), pages, cfg.Nav.BasePath, headers)
		return nil
	},
}

var pagesRemoveCmd = &cobra.Command{
	Use:   "remove <script-id>",
	Short: "Remove a page from the registry",
	Long:  "Remove a page from the registry. Removing the last page re-seeds the defaults on next start.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		ctx := context.Background()
		db, _, err := openRegistry(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		removed, err := removePage(ctx, db, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s (%s)\n", removed.ScriptID, removed.DisplayName)
		return nil
	},
}

func init() {
	pagesCmd.AddCommand(pagesRemoveCmd)
	rootCmd.AddCommand(pagesCmd)
}

func removePage(ctx context.Context, db *sql.DB, scriptID string) (repository.Page, error) {
	repo := repository.NewPageRepo(db)
	p, err := repo.GetByScriptID(ctx, scriptID)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.Page{}, fmt.Errorf("no page with script id %q", scriptID)
	}
	if err != nil {
		return repository.Page{}, fmt.Errorf("find page: %w", err)
	}
	if err := repo.Delete(ctx, p.ID); err != nil {
		return repository.Page{}, fmt.Errorf("delete page %s: %w", scriptID, err)
	}
	return p, nil
}

func writePages(w io.Writer, pages []nav.Page, basePath string, headers nav.HeaderMap) {
	rows := nav.BuildRows(pages, "", basePath, headers, shell.PathResolver{})
	if len(rows) == 0 {
		fmt.Fprintln(w, "(fewer than two pages; navigator hidden)")
		return
	}
	for _, row := range rows {
		if row.Kind == nav.RowHeader {
			fmt.Fprintf(w, "%s\n", row.Label)
			continue
		}
		label := row.Label
		if row.Icon != "" {
			label = row.Icon + " " + label
		}
		fmt.Fprintf(w, "  %-28s %s\n", label, row.URL)
	}
}
