package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/models"
)

func countEpics(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM epics").Scan(&count))
	return count
}

func TestWithTx_Success_Commit(t *testing.T) {
	storage := setupSQLiteStorage(t)

	err := withTx(context.Background(), storage.db, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO epics (id, name, description, status) VALUES (?, ?, ?, ?)",
			1, "E", "D", "Open")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countEpics(t, storage.db))
}

func TestWithTx_Error_Rollback(t *testing.T) {
	storage := setupSQLiteStorage(t)
	expectedErr := errors.New("intentional error")

	err := withTx(context.Background(), storage.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO epics (id, name, description, status) VALUES (?, ?, ?, ?)",
			1, "E", "D", "Open"); err != nil {
			return err
		}
		return expectedErr
	})

	assert.ErrorIs(t, err, expectedErr)
	assert.Zero(t, countEpics(t, storage.db))
}

func TestWithTx_Error_BeginFails(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = withTx(context.Background(), db, func(*sql.Tx) error { return nil })

	assert.ErrorContains(t, err, "failed to begin transaction")
}

func TestValidateState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*models.DBState)
		wantErr string
	}{
		{"valid", func(*models.DBState) {}, ""},
		{"empty", func(s *models.DBState) { *s = *models.NewDBState() }, ""},
		{
			"dangling story",
			func(s *models.DBState) {
				e := s.Epics[4]
				e.Stories = []uint32{9}
				s.Epics[4] = e
			},
			"references missing story 9",
		},
		{
			"shared story",
			func(s *models.DBState) {
				e := s.Epics[4]
				e.Stories = []uint32{2}
				s.Epics[4] = e
			},
			"is owned by epics",
		},
		{
			"counter behind epic",
			func(s *models.DBState) { s.LastItemID = 3 },
			"exceeds last_item_id",
		},
		{
			"counter behind story",
			func(s *models.DBState) {
				s.LastItemID = 4
				s.Stories[5] = models.NewStory("late", "")
			},
			"story id 5 exceeds last_item_id",
		},
		{
			"id collision",
			func(s *models.DBState) { s.Stories[4] = models.NewStory("dup", "") },
			"used by both an epic and a story",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := sampleState()
			tt.mutate(state)

			err := validateState(state)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
