package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tally/internal/models"
)

// StoryDetail shows a single story. It is a leaf: there is nothing to descend into.
type StoryDetail struct {
	EpicID  uint32
	StoryID uint32
	db      reader
}

// NewStoryDetail creates a detail page bound to a story and the epic it was opened from.
func NewStoryDetail(db reader, epicID, storyID uint32) *StoryDetail {
	return &StoryDetail{EpicID: epicID, StoryID: storyID, db: db}
}

func (p *StoryDetail) Kind() Kind { return KindStoryDetail }

func (p *StoryDetail) page() {}

func (p *StoryDetail) Render(ctx context.Context) (string, error) {
	state, err := p.db.ReadDB(ctx)
	if err != nil {
		return "", err
	}

	story, ok := state.Stories[p.StoryID]
	if !ok {
		return "", fmt.Errorf("story %d: %w", p.StoryID, models.ErrNotFound)
	}

	var b strings.Builder
	b.WriteString(bannerStory + "\n")
	b.WriteString(detailHeader + "\n")
	fmt.Fprintf(&b, "%s | %s | %s | %s\n",
		ColumnString(strconv.FormatUint(uint64(p.StoryID), 10), idDetailWidth),
		ColumnString(story.Name, nameDetailWidth),
		ColumnString(story.Description, descDetailWidth),
		ColumnString(story.Status.String(), statusDetailWidth))

	b.WriteString("\n\n")
	b.WriteString("[p] previous | [u] update story | [d] delete story\n")
	return b.String(), nil
}

func (p *StoryDetail) HandleInput(ctx context.Context, input string) (*models.Action, error) {
	if _, err := p.db.ReadDB(ctx); err != nil {
		return nil, err
	}

	switch input {
	case "p":
		return actionOf(models.NavigateToPreviousPage()), nil
	case "u":
		return actionOf(models.UpdateStoryStatus(p.StoryID)), nil
	case "d":
		return actionOf(models.DeleteStory(p.EpicID, p.StoryID)), nil
	}
	return nil, nil
}
