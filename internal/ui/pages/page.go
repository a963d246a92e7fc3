// Package pages implements the screens of the tracker. A Page renders itself
// from the current database state and turns one raw line of input into an
// Action for the navigator.
package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/thenoetrevino/tally/internal/models"
)

// Kind tags which variant a Page is.
type Kind int

const (
	KindHome Kind = iota
	KindEpicDetail
	KindStoryDetail
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "Home"
	case KindEpicDetail:
		return "EpicDetail"
	case KindStoryDetail:
		return "StoryDetail"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Page is the closed set {Home, EpicDetail, StoryDetail}. The unexported
// method keeps other packages from adding variants.
//
// HandleInput matches the input literally: trailing whitespace or a newline
// means no match. A nil Action with a nil error means "no action".
type Page interface {
	Kind() Kind
	Render(ctx context.Context) (string, error)
	HandleInput(ctx context.Context, input string) (*models.Action, error)
	page()
}

// reader is the slice of the data store the pages need
type reader interface {
	ReadDB(ctx context.Context) (*models.DBState, error)
}

// parseID accepts only a plain decimal unsigned 32-bit number.
func parseID(input string) (uint32, bool) {
	id, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}

func actionOf(a models.Action) *models.Action {
	return &a
}
