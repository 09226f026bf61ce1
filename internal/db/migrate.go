package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillCompletedItems(db); err != nil {
		return fmt.Errorf("backfilling directive completed items: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS directives (
		date       TEXT PRIMARY KEY,
		message    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS meals (
		id              TEXT PRIMARY KEY,
		date            TEXT NOT NULL,
		minute          INTEGER NOT NULL CHECK(minute >= 0),
		name            TEXT NOT NULL,
		directive_index INTEGER,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_meals_date ON meals(date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_meals_directive ON meals(date, directive_index) WHERE directive_index IS NOT NULL`,

	`CREATE TABLE IF NOT EXISTS meal_items (
		meal_id   TEXT NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		name      TEXT NOT NULL,
		amount    REAL NOT NULL DEFAULT 0,
		unit      TEXT NOT NULL DEFAULT 'g',
		grams     REAL NOT NULL DEFAULT 0,
		protein   REAL NOT NULL DEFAULT 0,
		fat       REAL NOT NULL DEFAULT 0,
		carbs     REAL NOT NULL DEFAULT 0,
		fiber     REAL NOT NULL DEFAULT 0,
		sugar     REAL NOT NULL DEFAULT 0,
		gi        INTEGER NOT NULL DEFAULT 0,
		diaas     REAL NOT NULL DEFAULT 0,
		vitamins  TEXT NOT NULL DEFAULT '{}',
		minerals  TEXT NOT NULL DEFAULT '{}',
		estimated INTEGER NOT NULL DEFAULT 0,
		source    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (meal_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id              TEXT PRIMARY KEY,
		date            TEXT NOT NULL,
		minute          INTEGER NOT NULL CHECK(minute >= 0),
		name            TEXT NOT NULL,
		exercises       TEXT NOT NULL DEFAULT '[]',
		duration_min    INTEGER NOT NULL DEFAULT 0,
		calories_burned INTEGER NOT NULL DEFAULT 0,
		directive_index INTEGER,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_workouts_directive ON workouts(date, directive_index) WHERE directive_index IS NOT NULL`,

	`CREATE TABLE IF NOT EXISTS schedule_profile (
		id                  TEXT PRIMARY KEY DEFAULT 'default',
		wake_time           TEXT NOT NULL DEFAULT '07:00',
		sleep_time          TEXT NOT NULL DEFAULT '23:00',
		training_time       TEXT NOT NULL DEFAULT '17:00',
		meals_per_day       INTEGER NOT NULL DEFAULT 5
		                    CHECK(meals_per_day BETWEEN 1 AND 10),
		training_after_meal INTEGER NOT NULL DEFAULT 3
		                    CHECK(training_after_meal >= 0)
	)`,

	// Seed default schedule profile
	`INSERT OR IGNORE INTO schedule_profile (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS rest_days (
		date TEXT PRIMARY KEY
	)`,

	// Completed items were added after directives shipped.
	`ALTER TABLE directives ADD COLUMN completed_items TEXT NOT NULL DEFAULT '[]'`,
}

// migrateBackfillCompletedItems normalizes completed_items rows written as
// empty strings by early builds to an empty JSON array.
// Idempotent: only touches rows that are not valid arrays.
func migrateBackfillCompletedItems(db *sql.DB) error {
	ctx := context.Background()
	if _, err := db.ExecContext(ctx,
		`UPDATE directives SET completed_items = '[]' WHERE completed_items IS NULL OR TRIM(completed_items) = ''`); err != nil {
		return fmt.Errorf("normalizing completed_items: %w", err)
	}
	return nil
}
