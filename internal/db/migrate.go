package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements. Each statement must be
// idempotent: the migration system re-runs the full list on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS heartbeat_cache (
		id         TEXT PRIMARY KEY,
		user       TEXT NOT NULL,
		date       TEXT NOT NULL,
		payload    TEXT NOT NULL,
		fetched_at TEXT NOT NULL,
		UNIQUE(user, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_heartbeat_cache_date ON heartbeat_cache(date)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
