package database

import (
	"fmt"
	"io"
)

// Backend names a Storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend validates a backend name from config or flags.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case BackendJSON, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (want json, sqlite or memory)", name)
	}
}

// closeStorage releases the storage if it holds resources (e.g. a sql.DB).
func closeStorage(s Storage) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
