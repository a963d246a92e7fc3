package database

import (
	"context"

	"github.com/thenoetrevino/tally/internal/models"
)

// MemoryStorage is an in-process Storage, used as a test double and for
// throwaway sessions. Load and Save copy the state so callers never share
// maps with the stored document.
type MemoryStorage struct {
	state *models.DBState

	// LoadErr and SaveErr, when set, are returned instead of touching the state.
	LoadErr error
	SaveErr error

	// Saves counts successful saves.
	Saves int
}

// NewMemoryStorage returns storage holding an empty document.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{state: models.NewDBState()}
}

// NewMemoryStorageWith returns storage seeded with a copy of state.
func NewMemoryStorageWith(state *models.DBState) *MemoryStorage {
	return &MemoryStorage{state: state.Clone()}
}

func (m *MemoryStorage) Load(_ context.Context) (*models.DBState, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.state.Clone(), nil
}

func (m *MemoryStorage) Save(_ context.Context, state *models.DBState) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.state = state.Clone()
	m.Saves++
	return nil
}

// Snapshot returns a copy of the stored document without going through Load.
func (m *MemoryStorage) Snapshot() *models.DBState {
	return m.state.Clone()
}
