// Package render holds the width-aware text helpers the views are built
// from. All widths are terminal cells, not bytes.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize strips control characters (tabs survive) and invalid UTF-8 from
// s, and turns non-breaking spaces into plain ones. Names come straight off
// a card, so the terminal must never see them raw. The replacement
// character is dropped along with the bytes it stands for.
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, suspectRune) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == utf8.RuneError:
			// the range loop already collapsed the invalid bytes
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func suspectRune(r rune) bool {
	return r == utf8.RuneError || r == '\u00a0' || (r != '\t' && unicode.IsControl(r))
}

// Truncate shortens s to maxWidth cells, marking the cut with "...".
// Wide runes never straddle the boundary.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateLeft shortens a string from the front, keeping the tail visible.
// Used for paths, where the deepest components matter most.
func TruncateLeft(s string, maxWidth int) string {
	s = Sanitize(s)
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	for lipgloss.Width(s) > maxWidth-1 && s != "" {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return "…" + s
}

// Pad extends s with spaces to exactly width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad forces s to exactly width cells, cutting or padding as
// needed.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row lays out left- and right-aligned content on one line of the given
// width. The gap never collapses below one space, so an over-full row runs
// wide rather than merging its sides.
func Row(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Separator draws a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// EmptyLine returns width spaces.
func EmptyLine(width int) string {
	return strings.Repeat(" ", width)
}
