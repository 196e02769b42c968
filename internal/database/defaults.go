package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/sidenav/internal/database/repository"
)

type defaultPage struct {
	script string
	name   string
	icon   string
}

var defaultPages = []defaultPage{
	{"home", "Home", "🏠"},
	{"company_search", "Company_Search", "🔎"},
	{"watchlists", "Watchlists", "👀"},
	{"market_research", "Market_Research", "📊"},
	{"financials", "Financials", "💹"},
	{"news_monitor", "News_Monitor", "📰"},
	{"pitch_builder", "Pitch_Builder", "🛠"},
	{"deck_library", "Deck_Library", "📚"},
	{"outreach", "Outreach", "✉"},
	{"settings", "Settings", "⚙"},
}

// SeedDefaults ensures the stock pages exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewPageRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count pages: %w", err)
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for idx, d := range defaultPages {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("page:"+d.script)).String()
			icon := d.icon
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO pages(id, script_id, display_name, icon, sort_order) VALUES (?, ?, ?, ?, ?)`,
				id, d.script, d.name, &icon, idx,
			); err != nil {
				return fmt.Errorf("seed page %s: %w", d.script, err)
			}
		}
		return nil
	})
}
