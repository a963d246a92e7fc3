package models

// Epic is a top-level work item. It owns the ordered list of its story ids;
// the story payloads live in DBState.Stories.
type Epic struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Stories     []uint32 `json:"stories"`
}

// NewEpic returns an open epic with no stories.
func NewEpic(name, description string) Epic {
	return Epic{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
		Stories:     []uint32{},
	}
}

// HasStory reports whether storyID is in the epic's story list.
func (e *Epic) HasStory(storyID uint32) bool {
	for _, id := range e.Stories {
		if id == storyID {
			return true
		}
	}
	return false
}

// RemoveStory drops storyID from the story list, keeping the order of the rest.
func (e *Epic) RemoveStory(storyID uint32) {
	kept := e.Stories[:0]
	for _, id := range e.Stories {
		if id != storyID {
			kept = append(kept, id)
		}
	}
	e.Stories = kept
}
