package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tally/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps the DBState in normalized SQLite tables. Save rewrites
// every row inside one transaction, so the document is still replaced as a whole.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLiteStorage opens (or creates) the database at path and runs migrations.
// Use ":memory:" for a throwaway database.
func OpenSQLiteStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeDB(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

// Close releases the underlying connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Load reads every table into a fresh DBState.
func (s *SQLiteStorage) Load(ctx context.Context) (*models.DBState, error) {
	state := models.NewDBState()

	err := s.db.QueryRowContext(ctx, "SELECT last_item_id FROM meta WHERE id = 1").Scan(&state.LastItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: missing field %q", models.ErrParse, "last_item_id")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRead, err)
	}

	if err := s.loadEpics(ctx, state); err != nil {
		return nil, err
	}
	if err := s.loadStories(ctx, state); err != nil {
		return nil, err
	}
	if err := s.loadEpicStories(ctx, state); err != nil {
		return nil, err
	}

	if err := validateState(state); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrParse, err)
	}
	return state, nil
}

func (s *SQLiteStorage) loadEpics(ctx context.Context, state *models.DBState) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, description, status FROM epics")
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id         uint32
			statusName string
			epic       = models.Epic{Stories: []uint32{}}
		)
		if err := rows.Scan(&id, &epic.Name, &epic.Description, &statusName); err != nil {
			return fmt.Errorf("%w: %w", models.ErrParse, err)
		}
		if epic.Status, err = models.ParseStatus(statusName); err != nil {
			return fmt.Errorf("%w: epic %d: %w", models.ErrParse, id, err)
		}
		state.Epics[id] = epic
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	return nil
}

func (s *SQLiteStorage) loadStories(ctx context.Context, state *models.DBState) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, description, status FROM stories")
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id         uint32
			statusName string
			story      models.Story
		)
		if err := rows.Scan(&id, &story.Name, &story.Description, &statusName); err != nil {
			return fmt.Errorf("%w: %w", models.ErrParse, err)
		}
		if story.Status, err = models.ParseStatus(statusName); err != nil {
			return fmt.Errorf("%w: story %d: %w", models.ErrParse, id, err)
		}
		state.Stories[id] = story
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	return nil
}

func (s *SQLiteStorage) loadEpicStories(ctx context.Context, state *models.DBState) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT epic_id, story_id FROM epic_stories ORDER BY epic_id, position")
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var epicID, storyID uint32
		if err := rows.Scan(&epicID, &storyID); err != nil {
			return fmt.Errorf("%w: %w", models.ErrParse, err)
		}
		epic, ok := state.Epics[epicID]
		if !ok {
			return fmt.Errorf("%w: story link references missing epic %d", models.ErrParse, epicID)
		}
		epic.Stories = append(epic.Stories, storyID)
		state.Epics[epicID] = epic
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	return nil
}

// Save replaces every row with the contents of state in one transaction.
func (s *SQLiteStorage) Save(ctx context.Context, state *models.DBState) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			"DELETE FROM epic_stories",
			"DELETE FROM stories",
			"DELETE FROM epics",
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE meta SET last_item_id = ? WHERE id = 1", state.LastItemID); err != nil {
			return err
		}

		for id, epic := range state.Epics {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO epics (id, name, description, status) VALUES (?, ?, ?, ?)",
				id, epic.Name, epic.Description, epic.Status.PersistedName()); err != nil {
				return err
			}
		}

		for id, story := range state.Stories {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO stories (id, name, description, status) VALUES (?, ?, ?, ?)",
				id, story.Name, story.Description, story.Status.PersistedName()); err != nil {
				return err
			}
		}

		for epicID, epic := range state.Epics {
			for position, storyID := range epic.Stories {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO epic_stories (epic_id, story_id, position) VALUES (?, ?, ?)",
					epicID, storyID, position); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrWrite, err)
	}
	return nil
}
