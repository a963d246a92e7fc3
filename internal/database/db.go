package database

import (
	"context"
	"fmt"
	"log/slog"
)

// Open selects and initializes the storage backend once, at process start,
// and wraps it in a Repository. Missing documents are created empty.
func Open(ctx context.Context, backend Backend, path string) (*Repository, error) {
	var storage Storage

	switch backend {
	case BackendJSON:
		js := NewJSONFileStorage(path)
		if err := js.Init(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize json storage: %w", err)
		}
		storage = js
	case BackendSQLite:
		ss, err := OpenSQLiteStorage(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite storage: %w", err)
		}
		storage = ss
	case BackendMemory:
		storage = NewMemoryStorage()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	slog.Debug("storage opened", "backend", backend, "path", path)
	return NewRepository(storage), nil
}
