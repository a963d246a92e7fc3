package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/tally/internal/models"
)

// FormPrompter asks questions with interactive huh forms. It needs a terminal.
type FormPrompter struct {
	// run executes a form; replaced in tests
	run func(*huh.Form) error
}

// NewFormPrompter creates a prompter that runs forms on the controlling terminal.
func NewFormPrompter() *FormPrompter {
	return &FormPrompter{run: func(f *huh.Form) error { return f.Run() }}
}

func (p *FormPrompter) CreateEpic() (models.Epic, error) {
	var name, description string
	if err := p.runForm(CreateEpicForm(&name, &description)); err != nil {
		return models.Epic{}, err
	}
	return models.NewEpic(name, description), nil
}

func (p *FormPrompter) CreateStory() (models.Story, error) {
	var name, description string
	if err := p.runForm(CreateStoryForm(&name, &description)); err != nil {
		return models.Story{}, err
	}
	return models.NewStory(name, description), nil
}

func (p *FormPrompter) ConfirmDeleteEpic() (bool, error) {
	var confirm bool
	form := DeleteConfirmForm("Delete this epic? All stories in this epic will also be deleted.", &confirm)
	if err := p.runForm(form); err != nil {
		return false, err
	}
	return confirm, nil
}

func (p *FormPrompter) ConfirmDeleteStory() (bool, error) {
	var confirm bool
	if err := p.runForm(DeleteConfirmForm("Delete this story?", &confirm)); err != nil {
		return false, err
	}
	return confirm, nil
}

func (p *FormPrompter) PickStatus() (*models.Status, error) {
	choice := noStatusChange
	if err := p.runForm(StatusForm(&choice)); err != nil {
		return nil, err
	}
	return statusFromChoice(choice), nil
}

// statusFromChoice maps a select value back to a status; out of range means no change.
func statusFromChoice(choice int) *models.Status {
	if choice < 0 || choice >= len(models.AllStatuses) {
		return nil
	}
	status := models.AllStatuses[choice]
	return &status
}

func (p *FormPrompter) runForm(form *huh.Form) error {
	if err := p.run(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("form failed: %w", err)
	}
	return nil
}

var _ Prompter = (*FormPrompter)(nil)
