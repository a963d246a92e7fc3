package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tally/internal/models"
)

// ============================================================================
// STORAGE SETUP HELPERS
// ============================================================================

// setupMemoryRepo returns a repository over an empty in-memory document
func setupMemoryRepo(t *testing.T) (*Repository, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	return NewRepository(storage), storage
}

// setupSQLiteStorage opens a fresh in-memory SQLite database with migrations applied
func setupSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	storage, err := OpenSQLiteStorage(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite storage: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

// setupJSONStorage creates an initialized document inside a temp dir
func setupJSONStorage(t *testing.T) *JSONFileStorage {
	t.Helper()
	storage := NewJSONFileStorage(filepath.Join(t.TempDir(), "data", "db.json"))
	if err := storage.Init(context.Background()); err != nil {
		t.Fatalf("Failed to init json storage: %v", err)
	}
	return storage
}

// sampleState builds a small world: epic 1 owning stories 2 and 3, epic 4 empty
func sampleState() *models.DBState {
	state := models.NewDBState()
	state.LastItemID = 4

	e1 := models.NewEpic("Epic - Project 1", "This is a project!")
	e1.Stories = []uint32{3, 2}
	e1.Status = models.StatusInProgress
	state.Epics[1] = e1
	state.Epics[4] = models.NewEpic("Epic - Project 2", "")

	state.Stories[2] = models.NewStory("Story - Project 1 Solution", "Please provide full implementation.")
	s3 := models.NewStory("Story - Project 1 README", "Please create README")
	s3.Status = models.StatusClosed
	state.Stories[3] = s3

	return state
}
