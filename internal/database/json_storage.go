package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tally/internal/models"
)

// JSONFileStorage keeps the DBState as one JSON document on disk.
type JSONFileStorage struct {
	Path string
}

// NewJSONFileStorage returns storage backed by the file at path.
func NewJSONFileStorage(path string) *JSONFileStorage {
	return &JSONFileStorage{Path: path}
}

// Init creates the parent directory and an empty document if the file does not exist.
func (s *JSONFileStorage) Init(ctx context.Context) error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", models.ErrRead, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return s.Save(ctx, models.NewDBState())
}

// Load reads and strictly parses the whole document.
func (s *JSONFileStorage) Load(_ context.Context) (*models.DBState, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	return decodeDocument(data)
}

// Save writes the document to a temporary file next to the target and
// renames it into place.
func (s *JSONFileStorage) Save(_ context.Context, state *models.DBState) error {
	data, err := json.MarshalIndent(state.Clone(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrWrite, err)
	}
	data = append(data, '\n')

	if err := atomicWriteFile(s.Path, data); err != nil {
		return fmt.Errorf("%w: %w", models.ErrWrite, err)
	}
	return nil
}

func atomicWriteFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// rawDocument mirrors the persisted schema with pointer fields so that a
// missing field can be told apart from a zero value.
type rawDocument struct {
	LastItemID *uint32              `json:"last_item_id"`
	Epics      map[uint32]*rawEpic  `json:"epics"`
	Stories    map[uint32]*rawStory `json:"stories"`
}

type rawEpic struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Status      *models.Status `json:"status"`
	Stories     *[]uint32      `json:"stories"`
}

type rawStory struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Status      *models.Status `json:"status"`
}

func decodeDocument(data []byte) (*models.DBState, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrParse, err)
	}

	if raw.LastItemID == nil {
		return nil, fmt.Errorf("%w: missing field %q", models.ErrParse, "last_item_id")
	}
	if raw.Epics == nil {
		return nil, fmt.Errorf("%w: missing field %q", models.ErrParse, "epics")
	}
	if raw.Stories == nil {
		return nil, fmt.Errorf("%w: missing field %q", models.ErrParse, "stories")
	}

	state := models.NewDBState()
	state.LastItemID = *raw.LastItemID

	for id, e := range raw.Epics {
		if e == nil || e.Name == nil || e.Description == nil || e.Status == nil || e.Stories == nil {
			return nil, fmt.Errorf("%w: epic %d is missing a field", models.ErrParse, id)
		}
		stories := *e.Stories
		if stories == nil {
			stories = []uint32{}
		}
		state.Epics[id] = models.Epic{
			Name:        *e.Name,
			Description: *e.Description,
			Status:      *e.Status,
			Stories:     stories,
		}
	}

	for id, s := range raw.Stories {
		if s == nil || s.Name == nil || s.Description == nil || s.Status == nil {
			return nil, fmt.Errorf("%w: story %d is missing a field", models.ErrParse, id)
		}
		state.Stories[id] = models.Story{
			Name:        *s.Name,
			Description: *s.Description,
			Status:      *s.Status,
		}
	}

	if err := validateState(state); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrParse, err)
	}
	return state, nil
}
