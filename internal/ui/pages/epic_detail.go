package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tally/internal/models"
)

// EpicDetail shows one epic and the stories it owns.
type EpicDetail struct {
	EpicID uint32
	db     reader
}

// NewEpicDetail creates a detail page bound to epicID. The id is not checked
// here; Render reports it if it does not exist.
func NewEpicDetail(db reader, epicID uint32) *EpicDetail {
	return &EpicDetail{EpicID: epicID, db: db}
}

func (p *EpicDetail) Kind() Kind { return KindEpicDetail }

func (p *EpicDetail) page() {}

func (p *EpicDetail) Render(ctx context.Context) (string, error) {
	state, err := p.db.ReadDB(ctx)
	if err != nil {
		return "", err
	}

	epic, ok := state.Epics[p.EpicID]
	if !ok {
		return "", fmt.Errorf("epic %d: %w", p.EpicID, models.ErrNotFound)
	}

	var b strings.Builder
	b.WriteString(bannerEpic + "\n")
	b.WriteString(detailHeader + "\n")
	fmt.Fprintf(&b, "%s | %s | %s | %s\n",
		ColumnString(strconv.FormatUint(uint64(p.EpicID), 10), idDetailWidth),
		ColumnString(epic.Name, nameDetailWidth),
		ColumnString(epic.Description, descDetailWidth),
		ColumnString(epic.Status.String(), statusDetailWidth))
	b.WriteString("\n")

	b.WriteString(bannerStories + "\n")
	b.WriteString(listHeader + "\n")
	for _, id := range models.SortedStoryIDs(epic) {
		story := state.Stories[id]
		fmt.Fprintf(&b, "%s | %s | %s\n",
			ColumnString(strconv.FormatUint(uint64(id), 10), idListWidth),
			ColumnString(story.Name, nameListWidth),
			ColumnString(story.Status.String(), statusListWidth))
	}

	b.WriteString("\n\n")
	b.WriteString("[p] previous | [u] update epic | [d] delete epic | [c] create story | [:id:] navigate to story\n")
	return b.String(), nil
}

// HandleInput maps the epic commands, or the id of a story owned by this
// epic, to an action.
func (p *EpicDetail) HandleInput(ctx context.Context, input string) (*models.Action, error) {
	state, err := p.db.ReadDB(ctx)
	if err != nil {
		return nil, err
	}

	switch input {
	case "p":
		return actionOf(models.NavigateToPreviousPage()), nil
	case "u":
		return actionOf(models.UpdateEpicStatus(p.EpicID)), nil
	case "d":
		return actionOf(models.DeleteEpic(p.EpicID)), nil
	case "c":
		return actionOf(models.CreateStory(p.EpicID)), nil
	}

	if id, ok := parseID(input); ok {
		if epic, exists := state.Epics[p.EpicID]; exists && epic.HasStory(id) {
			return actionOf(models.NavigateToStoryDetail(p.EpicID, id)), nil
		}
	}
	return nil, nil
}
