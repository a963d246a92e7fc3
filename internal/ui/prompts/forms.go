package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// noStatusChange is the select value for "keep the current status"
const noStatusChange = -1

// theme tints the base huh theme with the tracker's accent color
func theme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color("#7D56F4")
	subtle := lipgloss.Color("#6B7280")

	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(subtle)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accent).
		Bold(true)

	t.Blurred = t.Focused
	t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

	return t
}

// CreateEpicForm creates a huh form for adding a new epic
func CreateEpicForm(name *string, description *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Epic Name").
			Placeholder("Enter epic name...").
			Value(name),

		huh.NewText().
			Key("description").
			Title("Epic Description").
			Placeholder("Enter epic description...").
			CharLimit(500).
			Lines(3).
			Value(description),
	)).WithTheme(theme())
}

// CreateStoryForm creates a huh form for adding a new story
func CreateStoryForm(name *string, description *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Story Name").
			Placeholder("Enter story name...").
			Value(name),

		huh.NewText().
			Key("description").
			Title("Story Description").
			Placeholder("Enter story description...").
			CharLimit(500).
			Lines(3).
			Value(description),
	)).WithTheme(theme())
}

// DeleteConfirmForm asks a yes/no question defaulting to no
func DeleteConfirmForm(title string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Affirmative("Delete").
			Negative("Cancel").
			Value(confirm),
	)).WithTheme(theme())
}

// StatusForm lets the user pick a status or keep the current one
func StatusForm(choice *int) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Key("status").
			Title("New Status").
			Options(
				huh.NewOption("No change", noStatusChange),
				huh.NewOption("OPEN", 0),
				huh.NewOption("IN PROGRESS", 1),
				huh.NewOption("RESOLVED", 2),
				huh.NewOption("CLOSED", 3),
			).
			Value(choice),
	)).WithTheme(theme())
}
