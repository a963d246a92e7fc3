package pages

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "..."

// ColumnString fits text into a fixed-width table cell. Widths up to 3 are
// all ellipsis; longer text is cut to width-3 cells plus "..."; shorter text
// is right-padded with spaces.
func ColumnString(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= len(ellipsis) {
		return ellipsis[:width]
	}

	textWidth := ansi.PrintableRuneWidth(text)
	if textWidth > width {
		return truncate.StringWithTail(text, uint(width), ellipsis)
	}
	return text + strings.Repeat(" ", width-textWidth)
}
