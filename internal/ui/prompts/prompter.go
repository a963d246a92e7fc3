// Package prompts collects the extra input the navigator needs to carry out
// an action: new entity fields, delete confirmations and status choices.
package prompts

import (
	"errors"

	"github.com/thenoetrevino/tally/internal/models"
)

// ErrAborted means the user backed out of a prompt (EOF, Ctrl+C).
// The navigator treats it as "do nothing".
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user for the data an action needs.
type Prompter interface {
	CreateEpic() (models.Epic, error)
	CreateStory() (models.Story, error)
	ConfirmDeleteEpic() (bool, error)
	ConfirmDeleteStory() (bool, error)
	// PickStatus returns nil when the user chose not to change the status.
	PickStatus() (*models.Status, error)
}
