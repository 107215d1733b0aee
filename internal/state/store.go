// Package state persists the small amount of browse state the service keeps:
// which items the user hid and which sources are enabled.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS hidden_items (
	item_id TEXT PRIMARY KEY,
	hidden_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS source_settings (
	source TEXT PRIMARY KEY,
	enabled INTEGER NOT NULL
);`

// Store wraps the local SQLite database.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// Open opens (or creates) the database at path and bootstraps the schema.
func Open(path string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap state schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// NewStore wraps an existing database handle. Used by tests.
func NewStore(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) HideItem(ctx context.Context, itemID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO hidden_items (item_id, hidden_at) VALUES (?, ?)",
		itemID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("hide item: %w", err)
	}
	return nil
}

func (s *Store) UnhideItem(ctx context.Context, itemID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM hidden_items WHERE item_id = ?", itemID)
	if err != nil {
		return fmt.Errorf("unhide item: %w", err)
	}
	return nil
}

// HiddenItems returns the set of hidden item IDs.
func (s *Store) HiddenItems(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT item_id FROM hidden_items")
	if err != nil {
		return nil, fmt.Errorf("load hidden items: %w", err)
	}
	defer rows.Close()

	hidden := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan hidden item: %w", err)
		}
		hidden[id] = true
	}
	return hidden, rows.Err()
}

func (s *Store) SetSourceEnabled(ctx context.Context, source content.Source, enabled bool) error {
	value := 0
	if enabled {
		value = 1
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO source_settings (source, enabled) VALUES (?, ?)",
		string(source), value)
	if err != nil {
		return fmt.Errorf("set source enabled: %w", err)
	}
	return nil
}

// EnabledSources returns the enabled flag for every known source. Sources
// without a stored setting default to enabled.
func (s *Store) EnabledSources(ctx context.Context) (map[content.Source]bool, error) {
	enabled := make(map[content.Source]bool, len(content.Sources))
	for _, source := range content.Sources {
		enabled[source] = true
	}

	rows, err := s.db.QueryContext(ctx, "SELECT source, enabled FROM source_settings")
	if err != nil {
		return nil, fmt.Errorf("load source settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			source string
			flag   int
		)
		if err := rows.Scan(&source, &flag); err != nil {
			return nil, fmt.Errorf("scan source setting: %w", err)
		}
		enabled[content.Source(source)] = flag == 1
	}
	return enabled, rows.Err()
}
