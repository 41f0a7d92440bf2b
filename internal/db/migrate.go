package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id            TEXT PRIMARY KEY,
		short_id      TEXT NOT NULL DEFAULT '',
		title         TEXT NOT NULL,
		level         TEXT NOT NULL
		              CHECK(level IN ('beginner','intermediate','advanced')),
		hours_per_day REAL NOT NULL,
		start_date    TEXT NOT NULL,
		deadline      TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'active'
		              CHECK(status IN ('active','archived')),
		archived_at   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_goals_short_id ON goals(short_id) WHERE short_id != ''`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		goal_id      TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		day          INTEGER NOT NULL CHECK(day >= 1),
		topic        TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		duration     TEXT NOT NULL DEFAULT '',
		resources    TEXT NOT NULL DEFAULT '[]',
		status       TEXT NOT NULL DEFAULT 'pending'
		             CHECK(status IN ('pending','completed')),
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		UNIQUE (goal_id, day)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_goal ON tasks(goal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed_at)`,
	`CREATE TABLE IF NOT EXISTS short_id_sequences (
		prefix   TEXT PRIMARY KEY,
		next_seq INTEGER NOT NULL CHECK(next_seq > 0)
	)`,
	// Record which catalog curriculum produced a goal's roadmap.
	`ALTER TABLE goals ADD COLUMN catalog_key TEXT NOT NULL DEFAULT ''`,
}
