package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tally/internal/models"
)

func sampleState() *models.DBState {
	state := models.NewDBState()
	state.LastItemID = 4

	epic := models.NewEpic("Checkout", "Rework the checkout flow")
	epic.Status = models.StatusInProgress
	epic.Stories = []uint32{3, 2}
	state.Epics[1] = epic
	state.Epics[4] = models.NewEpic("Pipes | tables", "")

	state.Stories[2] = models.NewStory("Cart", "")
	closed := models.NewStory("Payment", "")
	closed.Status = models.StatusClosed
	state.Stories[3] = closed

	return state
}

func TestBuild(t *testing.T) {
	t.Parallel()

	want := `# Tally report

_2 epics, 2 stories_

## Epic 1: Checkout (IN PROGRESS)

Rework the checkout flow

| id | story | status |
| --- | --- | --- |
| 2 | Cart | OPEN |
| 3 | Payment | CLOSED |

## Epic 4: Pipes \| tables (OPEN)

No stories.
`
	assert.Equal(t, want, Build(sampleState()))
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "# Tally report\n\n_0 epics, 0 stories_\n", Build(models.NewDBState()))
}

func TestBuild_EscapesUserText(t *testing.T) {
	t.Parallel()
	state := models.NewDBState()
	state.LastItemID = 1
	state.Epics[1] = models.NewEpic("*bold* name",
		"# not a heading\n- not a list | pipe\n   12. not ordered\n> not a quote")

	got := Build(state)

	assert.Contains(t, got, "## Epic 1: \\*bold\\* name (OPEN)")
	assert.Contains(t, got, "\n\\# not a heading\n")
	assert.Contains(t, got, "\n\\- not a list \\| pipe\n")
	assert.Contains(t, got, "\n12\\. not ordered\n")
	assert.Contains(t, got, "\n\\> not a quote\n")

	headings := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "#") {
			headings++
		}
	}
	assert.Equal(t, 2, headings)
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := Render(Build(sampleState()), 80)

	assert.Contains(t, out, "Tally report")
	assert.Contains(t, out, "Checkout")
	assert.Contains(t, out, "Payment")
}

func TestTermWidth(t *testing.T) {
	t.Parallel()

	w := TermWidth()
	assert.Positive(t, w)
	assert.LessOrEqual(t, w, maxReadableWidth)
}
