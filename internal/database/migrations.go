package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds the counter row if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Single-row table holding the shared id counter
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_item_id INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS epics (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS stories (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// story_id is UNIQUE: a story belongs to at most one epic
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS epic_stories (
			epic_id INTEGER NOT NULL,
			story_id INTEGER NOT NULL UNIQUE,
			position INTEGER NOT NULL,
			PRIMARY KEY (epic_id, story_id),
			FOREIGN KEY (epic_id) REFERENCES epics(id) ON DELETE CASCADE,
			FOREIGN KEY (story_id) REFERENCES stories(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_epic_stories_position
		ON epic_stories(epic_id, position)
	`)
	if err != nil {
		return err
	}

	return seedCounter(ctx, db)
}

// seedCounter inserts the counter row if the meta table is empty
func seedCounter(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, "INSERT OR IGNORE INTO meta (id, last_item_id) VALUES (1, 0)")
	return err
}
