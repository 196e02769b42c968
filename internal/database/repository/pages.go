package repository

import (
	"context"
	"database/sql"
)

// PageRepo handles the page registry.
type PageRepo struct {
	db *sql.DB
}

func NewPageRepo(db *sql.DB) *PageRepo {
	return &PageRepo{db: db}
}

func (r *PageRepo) Upsert(ctx context.Context, p Page) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO pages(id, script_id, display_name, icon, sort_order)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 script_id=excluded.script_id,
	 display_name=excluded.display_name,
	 icon=excluded.icon,
	 sort_order=excluded.sort_order;
	`, p.ID, p.ScriptID, p.DisplayName, p.Icon, p.SortOrder)
	return err
}

// List returns pages in render order.
func (r *PageRepo) List(ctx context.Context) ([]Page, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, script_id, display_name, icon, sort_order FROM pages ORDER BY sort_order, display_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Page
	for rows.Next() {
		var p Page
		if err := rows.Scan(&p.ID, &p.ScriptID, &p.DisplayName, &p.Icon, &p.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PageRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}

// GetByScriptID returns sql.ErrNoRows when no page has that script id.
func (r *PageRepo) GetByScriptID(ctx context.Context, scriptID string) (Page, error) {
	var p Page
	err := r.db.QueryRowContext(ctx, `SELECT id, script_id, display_name, icon, sort_order FROM pages WHERE script_id = ?`, scriptID).
		Scan(&p.ID, &p.ScriptID, &p.DisplayName, &p.Icon, &p.SortOrder)
	return p, err
}

func (r *PageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	return err
}
