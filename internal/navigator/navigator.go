// Package navigator holds the stack of open pages and applies actions to it.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/ui/pages"
	"github.com/thenoetrevino/tally/internal/ui/prompts"
)

// Navigator is the page-stack state machine. The bottom of the stack is the
// first page shown; an empty stack means the program is done.
type Navigator struct {
	pages   []pages.Page
	prompts prompts.Prompter
	db      database.DataStore
}

// New creates a navigator showing the home page.
func New(db database.DataStore, prompter prompts.Prompter) *Navigator {
	return &Navigator{
		pages:   []pages.Page{pages.NewHome(db)},
		prompts: prompter,
		db:      db,
	}
}

// CurrentPage returns the top of the stack, or false when the stack is empty.
func (n *Navigator) CurrentPage() (pages.Page, bool) {
	if len(n.pages) == 0 {
		return nil, false
	}
	return n.pages[len(n.pages)-1], true
}

// PageCount returns the depth of the stack.
func (n *Navigator) PageCount() int {
	return len(n.pages)
}

// HandleAction applies one action. Data store errors are returned as-is and
// leave the stack unchanged; an aborted prompt is a no-op.
func (n *Navigator) HandleAction(ctx context.Context, action models.Action) error {
	slog.Debug("handling action", "type", action.Type, "epic_id", action.EpicID, "story_id", action.StoryID)

	err := n.apply(ctx, action)
	if errors.Is(err, prompts.ErrAborted) {
		slog.Debug("prompt aborted", "type", action.Type)
		return nil
	}
	return err
}

func (n *Navigator) apply(ctx context.Context, action models.Action) error {
	switch action.Type {
	case models.ActionNavigateToEpicDetail:
		n.push(pages.NewEpicDetail(n.db, action.EpicID))

	case models.ActionNavigateToStoryDetail:
		n.push(pages.NewStoryDetail(n.db, action.EpicID, action.StoryID))

	case models.ActionNavigateToPreviousPage:
		n.pop()

	case models.ActionCreateEpic:
		epic, err := n.prompts.CreateEpic()
		if err != nil {
			return err
		}
		if _, err := n.db.CreateEpic(ctx, epic); err != nil {
			return err
		}

	case models.ActionCreateStory:
		story, err := n.prompts.CreateStory()
		if err != nil {
			return err
		}
		if _, err := n.db.CreateStory(ctx, story, action.EpicID); err != nil {
			return err
		}

	case models.ActionUpdateEpicStatus:
		status, err := n.prompts.PickStatus()
		if err != nil || status == nil {
			return err
		}
		return n.db.UpdateEpicStatus(ctx, action.EpicID, *status)

	case models.ActionUpdateStoryStatus:
		status, err := n.prompts.PickStatus()
		if err != nil || status == nil {
			return err
		}
		return n.db.UpdateStoryStatus(ctx, action.StoryID, *status)

	case models.ActionDeleteEpic:
		confirmed, err := n.prompts.ConfirmDeleteEpic()
		if err != nil || !confirmed {
			return err
		}
		if err := n.db.DeleteEpic(ctx, action.EpicID); err != nil {
			return err
		}
		// the detail page of the deleted epic is stale
		n.pop()

	case models.ActionDeleteStory:
		confirmed, err := n.prompts.ConfirmDeleteStory()
		if err != nil || !confirmed {
			return err
		}
		if err := n.db.DeleteStory(ctx, action.EpicID, action.StoryID); err != nil {
			return err
		}
		n.pop()

	case models.ActionExit:
		n.pages = nil

	default:
		return fmt.Errorf("unknown action %v", action.Type)
	}

	return nil
}

func (n *Navigator) push(p pages.Page) {
	n.pages = append(n.pages, p)
}

// pop removes the top page; popping an empty stack does nothing.
func (n *Navigator) pop() {
	if len(n.pages) > 0 {
		n.pages = n.pages[:len(n.pages)-1]
	}
}
