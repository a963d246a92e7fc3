package pages

// Table widths. List rows are id | name | status, detail rows add a description.
const (
	idListWidth     = 11
	nameListWidth   = 32
	statusListWidth = 17

	idDetailWidth     = 5
	nameDetailWidth   = 12
	descDetailWidth   = 27
	statusDetailWidth = 13
)

const (
	bannerEpics   = "----------------------------- EPICS -----------------------------"
	bannerEpic    = "------------------------------ EPIC ------------------------------"
	bannerStory   = "------------------------------ STORY ------------------------------"
	bannerStories = "---------------------------- STORIES ----------------------------"

	listHeader   = "     id     |               name               |      status      "
	detailHeader = "  id  |     name     |         description         |    status    "
)
