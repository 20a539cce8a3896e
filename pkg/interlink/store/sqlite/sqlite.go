package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/interlink/interlink/pkg/interlink/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS pages (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	slug TEXT,
	title TEXT,
	status TEXT NOT NULL DEFAULT 'draft',
	seq INTEGER
);

CREATE TABLE IF NOT EXISTS page_categories (
	page_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	category TEXT NOT NULL,
	PRIMARY KEY(page_id, pos),
	FOREIGN KEY(page_id) REFERENCES pages(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS page_tags (
	page_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	tag TEXT NOT NULL,
	PRIMARY KEY(page_id, pos),
	FOREIGN KEY(page_id) REFERENCES pages(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_pages_status ON pages(status);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertPage inserts or updates a page. First insertion order is kept in
// the seq column so ListCandidates is stable across runs.
func (s *sqliteStore) UpsertPage(ctx context.Context, p store.Page) error {
	if p.ID == "" {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO pages (id, url, slug, title, status, seq)
VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM pages))
ON CONFLICT(id) DO UPDATE SET
	url = excluded.url,
	slug = excluded.slug,
	title = excluded.title,
	status = excluded.status`,
		p.ID, p.URL, p.Slug, p.Title, string(p.Status))
	if err != nil {
		return fmt.Errorf("upsert page %s: %w", p.ID, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM page_categories WHERE page_id = ?", p.ID); err != nil {
		return err
	}
	for i, cat := range p.Categories {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO page_categories (page_id, pos, category) VALUES (?, ?, ?)",
			p.ID, i, cat); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM page_tags WHERE page_id = ?", p.ID); err != nil {
		return err
	}
	for i, tag := range p.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO page_tags (page_id, pos, tag) VALUES (?, ?, ?)",
			p.ID, i, tag); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetPage returns a page by ID.
func (s *sqliteStore) GetPage(ctx context.Context, id string) (store.Page, bool, error) {
	var p store.Page
	var status string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, url, slug, title, status FROM pages WHERE id = ?", id).
		Scan(&p.ID, &p.URL, &p.Slug, &p.Title, &status)
	if err == sql.ErrNoRows {
		return store.Page{}, false, nil
	}
	if err != nil {
		return store.Page{}, false, err
	}
	p.Status = store.Status(status)

	p.Categories, err = s.loadLabels(ctx, "page_categories", "category", p.ID)
	if err != nil {
		return store.Page{}, false, err
	}
	p.Tags, err = s.loadLabels(ctx, "page_tags", "tag", p.ID)
	if err != nil {
		return store.Page{}, false, err
	}

	return p, true, nil
}

// ListCandidates returns up to limit ready pages in insertion order,
// excluding excludeID.
func (s *sqliteStore) ListCandidates(ctx context.Context, excludeID string, limit int) ([]store.Page, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, url, slug, title, status
FROM pages
WHERE status = ? AND id != ?
ORDER BY seq
LIMIT ?`, string(store.StatusReady), excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []store.Page
	for rows.Next() {
		var p store.Page
		var status string
		if err := rows.Scan(&p.ID, &p.URL, &p.Slug, &p.Title, &status); err != nil {
			return nil, err
		}
		p.Status = store.Status(status)
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range pages {
		pages[i].Categories, err = s.loadLabels(ctx, "page_categories", "category", pages[i].ID)
		if err != nil {
			return nil, err
		}
		pages[i].Tags, err = s.loadLabels(ctx, "page_tags", "tag", pages[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return pages, nil
}

func (s *sqliteStore) loadLabels(ctx context.Context, table, column, pageID string) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE page_id = ? ORDER BY pos", column, table)
	rows, err := s.db.QueryContext(ctx, query, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}
