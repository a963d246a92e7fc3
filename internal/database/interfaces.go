// Package database defines the storage capability and the data access layer
// that enforces referential integrity across epics and stories.
package database

import (
	"context"

	"github.com/thenoetrevino/tally/internal/models"
)

// Storage is a durable document holding one DBState. Load and Save operate
// on the whole document; there is no partial or incremental write.
//
// Load fails with models.ErrRead when the document is unreachable and with
// models.ErrParse when its content does not match the schema. Save fails with
// models.ErrWrite; after a failed Save the durable copy may be at its prior
// state or damaged, so the change must be treated as unconfirmed.
type Storage interface {
	Load(ctx context.Context) (*models.DBState, error)
	Save(ctx context.Context, state *models.DBState) error
}

// DataStore defines every data operation needed by the pages and the navigator.
// Each mutation is one complete load, mutate, save cycle.
type DataStore interface {
	ReadDB(ctx context.Context) (*models.DBState, error)

	CreateEpic(ctx context.Context, epic models.Epic) (uint32, error)
	CreateStory(ctx context.Context, story models.Story, epicID uint32) (uint32, error)
	DeleteEpic(ctx context.Context, epicID uint32) error
	DeleteStory(ctx context.Context, epicID, storyID uint32) error
	UpdateEpicStatus(ctx context.Context, epicID uint32, status models.Status) error
	UpdateStoryStatus(ctx context.Context, storyID uint32, status models.Status) error
}
