package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// seededRepo returns a repository over: epic 1 (stories 3, 2), epic 4 (empty),
// epic 5 (long name, empty)
func seededRepo(t *testing.T) *database.Repository {
	t.Helper()

	state := models.NewDBState()
	state.LastItemID = 5

	e1 := models.NewEpic("Epic - Project 1", "This is a project!")
	e1.Status = models.StatusInProgress
	e1.Stories = []uint32{3, 2}
	state.Epics[1] = e1
	state.Epics[4] = models.NewEpic("Epic - Project 2", "")
	e5 := models.NewEpic("A very long epic name that will not fit in the column",
		"with a description that is too long as well")
	e5.Status = models.StatusResolved
	state.Epics[5] = e5

	state.Stories[2] = models.NewStory("Story - Project 1 Solution", "Please provide full implementation.")
	s3 := models.NewStory("Story - Project 1 README", "Please create README")
	s3.Status = models.StatusClosed
	state.Stories[3] = s3

	return database.NewRepository(database.NewMemoryStorageWith(state))
}

// failingRepo returns a repository whose every read fails
func failingRepo() *database.Repository {
	storage := database.NewMemoryStorage()
	storage.LoadErr = errors.New("disk unplugged")
	return database.NewRepository(storage)
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func assertNoAction(t *testing.T, p Page, input string) {
	t.Helper()
	action, err := p.HandleInput(context.Background(), input)
	require.NoError(t, err)
	assert.Nil(t, action, "input %q", input)
}

func assertAction(t *testing.T, p Page, input string, expected models.Action) {
	t.Helper()
	action, err := p.HandleInput(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, action, "input %q", input)
	assert.Equal(t, expected, *action)
}

// ============================================================================
// HOME
// ============================================================================

func TestHome_Render(t *testing.T) {
	home := NewHome(seededRepo(t))

	out, err := home.Render(context.Background())

	require.NoError(t, err)
	newGoldie(t).Assert(t, "home", []byte(out))
}

func TestHome_HandleInput(t *testing.T) {
	t.Parallel()
	home := NewHome(seededRepo(t))

	assertAction(t, home, "q", models.Exit())
	assertAction(t, home, "c", models.CreateEpic())
	assertAction(t, home, "1", models.NavigateToEpicDetail(1))
	assertAction(t, home, "4", models.NavigateToEpicDetail(4))

	for _, input := range []string{"999", "2", "q\n", "qjunk", "1 ", " 1", "1\n", "", "C", "-1", "+1", "0x1", "4294967297"} {
		assertNoAction(t, home, input)
	}
}

func TestHome_ReadErrorsPropagate(t *testing.T) {
	t.Parallel()
	home := NewHome(failingRepo())

	_, err := home.Render(context.Background())
	assert.ErrorIs(t, err, models.ErrRead)

	_, err = home.HandleInput(context.Background(), "q")
	assert.ErrorIs(t, err, models.ErrRead)
}

// ============================================================================
// EPIC DETAIL
// ============================================================================

func TestEpicDetail_Render(t *testing.T) {
	page := NewEpicDetail(seededRepo(t), 1)

	out, err := page.Render(context.Background())

	require.NoError(t, err)
	newGoldie(t).Assert(t, "epic_detail", []byte(out))
}

func TestEpicDetail_RenderWithoutStories(t *testing.T) {
	page := NewEpicDetail(seededRepo(t), 5)

	out, err := page.Render(context.Background())

	require.NoError(t, err)
	newGoldie(t).Assert(t, "epic_detail_empty", []byte(out))
}

func TestEpicDetail_RenderMissingEpic(t *testing.T) {
	t.Parallel()
	page := NewEpicDetail(seededRepo(t), 999)

	_, err := page.Render(context.Background())

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEpicDetail_HandleInput(t *testing.T) {
	t.Parallel()
	page := NewEpicDetail(seededRepo(t), 1)

	assertAction(t, page, "p", models.NavigateToPreviousPage())
	assertAction(t, page, "u", models.UpdateEpicStatus(1))
	assertAction(t, page, "d", models.DeleteEpic(1))
	assertAction(t, page, "c", models.CreateStory(1))
	assertAction(t, page, "2", models.NavigateToStoryDetail(1, 2))
	assertAction(t, page, "3", models.NavigateToStoryDetail(1, 3))

	// 1 and 4 are epics, 999 does not exist
	for _, input := range []string{"1", "4", "999", "p\n", "pp", "2 ", "q", ""} {
		assertNoAction(t, page, input)
	}
}

func TestEpicDetail_StoryOfAnotherEpicIsNoAction(t *testing.T) {
	t.Parallel()
	page := NewEpicDetail(seededRepo(t), 4)

	assertNoAction(t, page, "2")
	assertAction(t, page, "c", models.CreateStory(4))
}

func TestEpicDetail_MissingEpicStillNavigatesBack(t *testing.T) {
	t.Parallel()
	page := NewEpicDetail(seededRepo(t), 999)

	assertAction(t, page, "p", models.NavigateToPreviousPage())
	assertNoAction(t, page, "2")
}

// ============================================================================
// STORY DETAIL
// ============================================================================

func TestStoryDetail_Render(t *testing.T) {
	page := NewStoryDetail(seededRepo(t), 1, 3)

	out, err := page.Render(context.Background())

	require.NoError(t, err)
	newGoldie(t).Assert(t, "story_detail", []byte(out))
}

func TestStoryDetail_RenderMissingStory(t *testing.T) {
	t.Parallel()
	page := NewStoryDetail(seededRepo(t), 1, 999)

	_, err := page.Render(context.Background())

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStoryDetail_HandleInput(t *testing.T) {
	t.Parallel()
	page := NewStoryDetail(seededRepo(t), 1, 2)

	assertAction(t, page, "p", models.NavigateToPreviousPage())
	assertAction(t, page, "u", models.UpdateStoryStatus(2))
	assertAction(t, page, "d", models.DeleteStory(1, 2))

	for _, input := range []string{"c", "2", "3", "u\n", "delete", ""} {
		assertNoAction(t, page, input)
	}
}

func TestStoryDetail_ReadErrorsPropagate(t *testing.T) {
	t.Parallel()
	page := NewStoryDetail(failingRepo(), 1, 2)

	_, err := page.HandleInput(context.Background(), "p")
	assert.ErrorIs(t, err, models.ErrRead)
}

// ============================================================================
// KINDS
// ============================================================================

func TestKinds(t *testing.T) {
	t.Parallel()
	repo := seededRepo(t)

	tests := []struct {
		page Page
		kind Kind
		name string
	}{
		{NewHome(repo), KindHome, "Home"},
		{NewEpicDetail(repo, 1), KindEpicDetail, "EpicDetail"},
		{NewStoryDetail(repo, 1, 2), KindStoryDetail, "StoryDetail"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.page.Kind())
		assert.Equal(t, tt.name, tt.page.Kind().String())
	}
}
