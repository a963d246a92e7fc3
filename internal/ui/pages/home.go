package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tally/internal/models"
)

// Home lists every epic.
type Home struct {
	db reader
}

// NewHome creates the home page.
func NewHome(db reader) *Home {
	return &Home{db: db}
}

func (h *Home) Kind() Kind { return KindHome }

func (h *Home) page() {}

// Render lists epics sorted by id.
func (h *Home) Render(ctx context.Context) (string, error) {
	state, err := h.db.ReadDB(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(bannerEpics + "\n")
	b.WriteString(listHeader + "\n")

	for _, id := range state.SortedEpicIDs() {
		epic := state.Epics[id]
		fmt.Fprintf(&b, "%s | %s | %s\n",
			ColumnString(strconv.FormatUint(uint64(id), 10), idListWidth),
			ColumnString(epic.Name, nameListWidth),
			ColumnString(epic.Status.String(), statusListWidth))
	}

	b.WriteString("\n\n")
	b.WriteString("[q] quit | [c] create epic | [:id:] navigate to epic\n")
	return b.String(), nil
}

// HandleInput maps "q", "c" or an existing epic id to an action.
func (h *Home) HandleInput(ctx context.Context, input string) (*models.Action, error) {
	state, err := h.db.ReadDB(ctx)
	if err != nil {
		return nil, err
	}

	switch input {
	case "q":
		return actionOf(models.Exit()), nil
	case "c":
		return actionOf(models.CreateEpic()), nil
	}

	if id, ok := parseID(input); ok {
		if _, exists := state.Epics[id]; exists {
			return actionOf(models.NavigateToEpicDetail(id)), nil
		}
	}
	return nil, nil
}
