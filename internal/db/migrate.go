package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// "duplicate column name" errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		policy             TEXT NOT NULL
		                   CHECK(policy IN ('strict','flexible','deadline','recurring_strict')),
		archived_at        TEXT,

		start_time         TEXT,
		end_time           TEXT,
		max_frequency_days INTEGER,
		deadline           TEXT,

		rec_frequency      TEXT,
		rec_interval       INTEGER,
		rec_by_weekdays    TEXT,
		rec_by_monthdays   TEXT,
		rec_by_setpos      TEXT,
		rec_start_date     TEXT,
		rec_end_date       TEXT,
		window_start_min   INTEGER,
		window_end_min     INTEGER,

		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_policy ON activities(policy)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_archived ON activities(archived_at)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id                      TEXT PRIMARY KEY,
		timezone                TEXT NOT NULL DEFAULT '',
		workday_start_hour      INTEGER NOT NULL DEFAULT 9,
		workday_end_hour        INTEGER NOT NULL DEFAULT 17,
		preferred_duration_min  INTEGER NOT NULL DEFAULT 60,
		buffer_min              INTEGER NOT NULL DEFAULT 15,
		exclude_weekends        INTEGER NOT NULL DEFAULT 0
	)`,
}
