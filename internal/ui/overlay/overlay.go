// Package overlay stacks a rendered popup onto a base view without losing
// the styling of either.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center draws popup over the middle of a width x height view. Base content
// shows through everywhere the popup has no visible cells.
func Center(base, popup string, width, height int) string {
	lines := strings.Split(popup, "\n")

	popupWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(ansi.Strip(line)); w > popupWidth {
			popupWidth = w
		}
	}
	top := max((height-len(lines))/2, 0)
	left := max((width-popupWidth)/2, 0)

	var b strings.Builder
	pad := strings.Repeat(" ", left)
	for i := 0; i < top; i++ {
		b.WriteByte('\n')
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	return compose(base, b.String(), width)
}

// compose merges the overlay into the base line by line. Both strings may
// carry ANSI styling; cuts happen on display columns, never inside an escape
// sequence.
func compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		start, end, ok := visibleSpan(overlayLine)
		if !ok {
			continue
		}
		content := ansi.Cut(overlayLine, start, end)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		merged := ansi.Cut(baseLine, 0, start) + content
		if end < width {
			merged += ansi.Cut(baseLine, end, width)
		}
		baseLines[i] = merged
	}

	return strings.Join(baseLines, "\n")
}

// visibleSpan finds the display-column range of a line's visible content.
// ok is false for lines that are blank once styling is stripped.
func visibleSpan(line string) (start, end int, ok bool) {
	plain := strings.TrimRight(ansi.Strip(line), " ")
	if plain == "" {
		return 0, 0, false
	}
	for _, r := range plain {
		if r != ' ' {
			break
		}
		start++
	}
	return start, start + ansi.StringWidth(plain[start:]), true
}
