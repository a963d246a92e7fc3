package models

// Story is a leaf work item. It has no back-reference to the epic owning it.
type Story struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// NewStory returns an open story.
func NewStory(name, description string) Story {
	return Story{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
	}
}
