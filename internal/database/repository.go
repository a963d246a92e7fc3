package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/models"
)

// Repository implements DataStore on top of a Storage. It owns id
// allocation, cascades and referential integrity. Every call starts from a
// fresh Load; mutations finish with a full Save and report failure if that
// Save fails, whatever the in-memory step produced.
type Repository struct {
	storage Storage
}

// NewRepository creates a Repository over the given storage.
func NewRepository(storage Storage) *Repository {
	return &Repository{storage: storage}
}

// Close releases the storage if it holds resources.
func (r *Repository) Close() error {
	return closeStorage(r.storage)
}

// ReadDB returns the current persisted state.
func (r *Repository) ReadDB(ctx context.Context) (*models.DBState, error) {
	state, err := r.storage.Load(ctx)
	if err != nil {
		return nil, asReadError(err)
	}
	return state, nil
}

// CreateEpic stores a new epic and returns its id. The epic always starts
// without stories; stories are attached through CreateStory.
func (r *Repository) CreateEpic(ctx context.Context, epic models.Epic) (uint32, error) {
	if !epic.Status.Valid() {
		return 0, fmt.Errorf("%w: status %d", models.ErrInvalidInput, int(epic.Status))
	}

	var id uint32
	err := r.mutate(ctx, "create epic", func(state *models.DBState) error {
		next, err := state.NextID()
		if err != nil {
			return err
		}
		id = next
		epic.Stories = []uint32{}
		state.Epics[id] = epic
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Debug("epic created", "id", id)
	return id, nil
}

// CreateStory stores a new story and appends it to the epic's story list.
func (r *Repository) CreateStory(ctx context.Context, story models.Story, epicID uint32) (uint32, error) {
	if !story.Status.Valid() {
		return 0, fmt.Errorf("%w: status %d", models.ErrInvalidInput, int(story.Status))
	}

	var id uint32
	err := r.mutate(ctx, "create story", func(state *models.DBState) error {
		epic, ok := state.Epics[epicID]
		if !ok {
			return epicNotFound(epicID)
		}

		next, err := state.NextID()
		if err != nil {
			return err
		}
		id = next
		state.Stories[id] = story
		epic.Stories = append(epic.Stories, id)
		state.Epics[epicID] = epic
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Debug("story created", "id", id, "epic_id", epicID)
	return id, nil
}

// DeleteEpic removes the epic and every story it owns.
func (r *Repository) DeleteEpic(ctx context.Context, epicID uint32) error {
	err := r.mutate(ctx, "delete epic", func(state *models.DBState) error {
		epic, ok := state.Epics[epicID]
		if !ok {
			return epicNotFound(epicID)
		}

		for _, storyID := range epic.Stories {
			delete(state.Stories, storyID)
		}
		delete(state.Epics, epicID)
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("epic deleted", "id", epicID)
	return nil
}

// DeleteStory removes a story owned by the given epic from both the epic's
// list and the story map.
func (r *Repository) DeleteStory(ctx context.Context, epicID, storyID uint32) error {
	err := r.mutate(ctx, "delete story", func(state *models.DBState) error {
		epic, ok := state.Epics[epicID]
		if !ok {
			return epicNotFound(epicID)
		}
		if !epic.HasStory(storyID) {
			return fmt.Errorf("story %d in epic %d: %w", storyID, epicID, models.ErrNotFound)
		}

		epic.RemoveStory(storyID)
		state.Epics[epicID] = epic
		delete(state.Stories, storyID)
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("story deleted", "id", storyID, "epic_id", epicID)
	return nil
}

// UpdateEpicStatus overwrites the epic's status.
func (r *Repository) UpdateEpicStatus(ctx context.Context, epicID uint32, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %d", models.ErrInvalidInput, int(status))
	}

	return r.mutate(ctx, "update epic status", func(state *models.DBState) error {
		epic, ok := state.Epics[epicID]
		if !ok {
			return epicNotFound(epicID)
		}
		epic.Status = status
		state.Epics[epicID] = epic
		return nil
	})
}

// UpdateStoryStatus overwrites the story's status.
func (r *Repository) UpdateStoryStatus(ctx context.Context, storyID uint32, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %d", models.ErrInvalidInput, int(status))
	}

	return r.mutate(ctx, "update story status", func(state *models.DBState) error {
		story, ok := state.Stories[storyID]
		if !ok {
			return storyNotFound(storyID)
		}
		story.Status = status
		state.Stories[storyID] = story
		return nil
	})
}

// mutate runs one load, mutate, save cycle. Nothing is saved when fn fails
// or ctx is already cancelled.
func (r *Repository) mutate(ctx context.Context, op string, fn func(*models.DBState) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	state, err := r.storage.Load(ctx)
	if err != nil {
		slog.Error("load failed", "op", op, "error", err)
		return fmt.Errorf("failed to %s: %w", op, asReadError(err))
	}

	if err := fn(state); err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	if err := r.storage.Save(ctx, state); err != nil {
		slog.Error("save failed", "op", op, "error", err)
		if !errors.Is(err, models.ErrWrite) {
			err = fmt.Errorf("%w: %w", models.ErrWrite, err)
		}
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	return nil
}

func asReadError(err error) error {
	if errors.Is(err, models.ErrRead) || errors.Is(err, models.ErrParse) {
		return err
	}
	return fmt.Errorf("%w: %w", models.ErrRead, err)
}

func epicNotFound(id uint32) error {
	return fmt.Errorf("epic %d: %w", id, models.ErrNotFound)
}

func storyNotFound(id uint32) error {
	return fmt.Errorf("story %d: %w", id, models.ErrNotFound)
}

var _ DataStore = (*Repository)(nil)
