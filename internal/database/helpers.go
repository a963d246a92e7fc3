package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// validateState checks the invariants every loaded document must satisfy:
// no dangling story references, each story owned by at most one epic, and
// a counter at least as large as every id in use.
func validateState(state *models.DBState) error {
	owner := make(map[uint32]uint32, len(state.Stories))

	for epicID, epic := range state.Epics {
		if epicID > state.LastItemID {
			return fmt.Errorf("epic id %d exceeds last_item_id %d", epicID, state.LastItemID)
		}
		for _, storyID := range epic.Stories {
			if _, ok := state.Stories[storyID]; !ok {
				return fmt.Errorf("epic %d references missing story %d", epicID, storyID)
			}
			if other, taken := owner[storyID]; taken {
				return fmt.Errorf("story %d is owned by epics %d and %d", storyID, other, epicID)
			}
			owner[storyID] = epicID
		}
	}

	for storyID := range state.Stories {
		if storyID > state.LastItemID {
			return fmt.Errorf("story id %d exceeds last_item_id %d", storyID, state.LastItemID)
		}
		if _, ok := state.Epics[storyID]; ok {
			return fmt.Errorf("id %d is used by both an epic and a story", storyID)
		}
	}

	return nil
}
