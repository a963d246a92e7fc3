// Package report summarizes the tracker as markdown, for `tally report`.
package report

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tally/internal/models"
	"golang.org/x/term"
)

const (
	defaultWidth     = 80
	maxReadableWidth = 100
)

// Cache glamour renderers by width; building one parses the whole style sheet
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// Build writes one section per epic, sorted by id, with its stories in a table.
func Build(state *models.DBState) string {
	var b strings.Builder

	b.WriteString("# Tally report\n\n")
	fmt.Fprintf(&b, "_%d epics, %d stories_\n", len(state.Epics), len(state.Stories))

	for _, id := range state.SortedEpicIDs() {
		epic := state.Epics[id]

		fmt.Fprintf(&b, "\n## Epic %d: %s (%s)\n\n", id, escape(epic.Name), epic.Status)
		if epic.Description != "" {
			b.WriteString(escape(wordwrap.String(epic.Description, defaultWidth)) + "\n\n")
		}

		storyIDs := models.SortedStoryIDs(epic)
		if len(storyIDs) == 0 {
			b.WriteString("No stories.\n")
			continue
		}

		b.WriteString("| id | story | status |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, storyID := range storyIDs {
			story := state.Stories[storyID]
			fmt.Fprintf(&b, "| %d | %s | %s |\n", storyID, escape(story.Name), story.Status)
		}
	}

	return b.String()
}

// Render renders markdown for the terminal at width columns. It returns the
// markdown unchanged if glamour fails.
func Render(markdown string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

// TermWidth returns the stdout width capped for readability, or 80 when
// stdout is not a terminal.
func TermWidth() int {
	width := defaultWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return min(width, maxReadableWidth)
}

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
	"~", `\~`,
)

// escape keeps user text from turning into markdown structure: headings,
// tables, lists, quotes or code.
func escape(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = escapeLine(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLine(line string) string {
	// leading spaces would start a code block
	line = strings.TrimLeft(inlineEscaper.Replace(line), " \t")
	if line == "" {
		return line
	}

	switch line[0] {
	case '-', '+', '=':
		return `\` + line
	}

	// "1." and "1)" start an ordered list
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		return line[:digits] + `\` + line[digits:]
	}
	return line
}
