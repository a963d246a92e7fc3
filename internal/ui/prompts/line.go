package prompts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/tally/internal/models"
)

const separator = "----------------------------"

var promptStyle = lipgloss.NewStyle().Bold(true)

// LinePrompter asks questions one line at a time. It must share its reader
// with whatever else consumes the same input stream.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading answers from in and writing questions to out.
func NewLinePrompter(in *bufio.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, out: out}
}

func (p *LinePrompter) CreateEpic() (models.Epic, error) {
	p.println(separator)
	name, err := p.ask("Epic Name: ")
	if err != nil {
		return models.Epic{}, err
	}
	desc, err := p.ask("Epic Description: ")
	if err != nil {
		return models.Epic{}, err
	}
	return models.NewEpic(name, desc), nil
}

func (p *LinePrompter) CreateStory() (models.Story, error) {
	p.println(separator)
	name, err := p.ask("Story Name: ")
	if err != nil {
		return models.Story{}, err
	}
	desc, err := p.ask("Story Description: ")
	if err != nil {
		return models.Story{}, err
	}
	return models.NewStory(name, desc), nil
}

func (p *LinePrompter) ConfirmDeleteEpic() (bool, error) {
	p.println(separator)
	return p.confirm("Are you sure you want to delete this epic? All stories in this epic will also be deleted [Y/n]: ")
}

func (p *LinePrompter) ConfirmDeleteStory() (bool, error) {
	p.println(separator)
	return p.confirm("Are you sure you want to delete this story? [Y/n]: ")
}

// PickStatus accepts 1-4; any other answer means no change.
func (p *LinePrompter) PickStatus() (*models.Status, error) {
	p.println(separator)
	answer, err := p.ask("New Status (1 - OPEN, 2 - IN-PROGRESS, 3 - RESOLVED, 4 - CLOSED): ")
	if err != nil {
		return nil, err
	}

	switch answer {
	case "1", "2", "3", "4":
		status := models.AllStatuses[answer[0]-'1']
		return &status, nil
	default:
		return nil, nil
	}
}

// confirm is true only for an exact "Y"
func (p *LinePrompter) confirm(question string) (bool, error) {
	answer, err := p.ask(question)
	if err != nil {
		return false, err
	}
	return answer == "Y", nil
}

// ask prints the question and returns the trimmed answer line.
func (p *LinePrompter) ask(question string) (string, error) {
	p.println(promptStyle.Render(question))

	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrAborted
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

var _ Prompter = (*LinePrompter)(nil)
