package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rompick/rompick/internal/browser"
	"github.com/rompick/rompick/internal/icons"
	"github.com/rompick/rompick/internal/ui/overlay"
	"github.com/rompick/rompick/internal/ui/render"
	"github.com/rompick/rompick/internal/ui/styles"
)

// View renders the listing window between a two-row header and a one-row
// footer. The window height tracks the terminal, so the output fills the
// screen exactly.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderListing())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())

	view := b.String()
	if m.showHelp {
		popup := styles.PopupStyle().Render(renderHelp())
		view = overlay.Center(view, popup, m.width, m.height)
	}
	return view
}

func (m Model) renderHeader() string {
	s := styles.S()

	count := fmt.Sprintf("%s entries", humanize.Comma(int64(m.session.Size())))
	title := render.Row(styles.TitleGradient("rompick"), s.Muted.Render(count), m.width)
	path := s.Muted.Render(render.TruncateLeft(m.session.Path(), m.width))

	return title + "\n" + path + "\n" + s.Subtle.Render(render.Separator(m.width))
}

func (m Model) renderListing() string {
	visible := m.session.Visible()
	start := m.session.WindowStart()
	cursor := m.session.Cursor()
	rows := m.session.PageSize()

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		switch {
		case i == 0 && len(visible) == 0:
			lines = append(lines, styles.S().Subtle.Render("  (empty directory)"))
		case i < len(visible):
			lines = append(lines, m.renderEntry(visible[i], start+i == cursor))
		default:
			lines = append(lines, render.EmptyLine(m.width))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(e browser.Entry, selected bool) string {
	s := styles.S()

	marker := "  "
	if selected {
		marker = "> "
	}

	name := e.Name
	st := s.File
	if e.IsDir() {
		name = icons.FormatDir(name)
		st = s.Directory
	} else {
		name = icons.FormatRom(name)
	}
	if selected {
		st = st.Background(styles.T().BgCursor)
	}

	return st.Render(marker + render.TruncateAndPad(name, m.width-len(marker)))
}

func (m Model) renderFooter() string {
	s := styles.S()

	var pos string
	if n := m.session.Size(); n > 0 {
		pos = fmt.Sprintf("%d/%d", m.session.Cursor()+1, n)
	}
	hints := render.Truncate("enter open · h back · ? help · q quit",
		max(0, m.width-len(pos)-1))
	return s.Muted.Render(render.Row(hints, pos, m.width))
}
