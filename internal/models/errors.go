package models

import "errors"

// Error taxonomy shared by the data store and the pages.
// Callers match with errors.Is; concrete errors wrap one of these with context.
var (
	// ErrNotFound indicates an epic or story id is absent, or a story is not
	// owned by the stated epic
	ErrNotFound = errors.New("not found")

	// ErrRead indicates the backing store could not be read
	ErrRead = errors.New("failed to read database")

	// ErrParse indicates the stored document does not match the schema
	ErrParse = errors.New("failed to parse database")

	// ErrWrite indicates the backing store could not be written. The change
	// it belonged to is not confirmed.
	ErrWrite = errors.New("failed to write database")

	// ErrInvalidInput is reserved for prompts that reject input. The current
	// prompts degrade unrecognized input to "no change" instead.
	ErrInvalidInput = errors.New("invalid input")
)
