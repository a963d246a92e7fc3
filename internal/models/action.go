package models

import "fmt"

// ActionType tags the variant of an Action.
type ActionType int

const (
	ActionNavigateToEpicDetail ActionType = iota + 1
	ActionNavigateToStoryDetail
	ActionNavigateToPreviousPage
	ActionCreateEpic
	ActionUpdateEpicStatus
	ActionDeleteEpic
	ActionCreateStory
	ActionUpdateStoryStatus
	ActionDeleteStory
	ActionExit
)

func (t ActionType) String() string {
	switch t {
	case ActionNavigateToEpicDetail:
		return "NavigateToEpicDetail"
	case ActionNavigateToStoryDetail:
		return "NavigateToStoryDetail"
	case ActionNavigateToPreviousPage:
		return "NavigateToPreviousPage"
	case ActionCreateEpic:
		return "CreateEpic"
	case ActionUpdateEpicStatus:
		return "UpdateEpicStatus"
	case ActionDeleteEpic:
		return "DeleteEpic"
	case ActionCreateStory:
		return "CreateStory"
	case ActionUpdateStoryStatus:
		return "UpdateStoryStatus"
	case ActionDeleteStory:
		return "DeleteStory"
	case ActionExit:
		return "Exit"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action is a user-intent command produced by a page and applied by the
// navigator. Only the ids relevant to Type are set.
type Action struct {
	Type    ActionType
	EpicID  uint32
	StoryID uint32
}

func NavigateToEpicDetail(epicID uint32) Action {
	return Action{Type: ActionNavigateToEpicDetail, EpicID: epicID}
}

func NavigateToStoryDetail(epicID, storyID uint32) Action {
	return Action{Type: ActionNavigateToStoryDetail, EpicID: epicID, StoryID: storyID}
}

func NavigateToPreviousPage() Action { return Action{Type: ActionNavigateToPreviousPage} }

func CreateEpic() Action { return Action{Type: ActionCreateEpic} }

func UpdateEpicStatus(epicID uint32) Action {
	return Action{Type: ActionUpdateEpicStatus, EpicID: epicID}
}

func DeleteEpic(epicID uint32) Action {
	return Action{Type: ActionDeleteEpic, EpicID: epicID}
}

func CreateStory(epicID uint32) Action {
	return Action{Type: ActionCreateStory, EpicID: epicID}
}

func UpdateStoryStatus(storyID uint32) Action {
	return Action{Type: ActionUpdateStoryStatus, StoryID: storyID}
}

func DeleteStory(epicID, storyID uint32) Action {
	return Action{Type: ActionDeleteStory, EpicID: epicID, StoryID: storyID}
}

func Exit() Action { return Action{Type: ActionExit} }
