// Package app is the terminal shell around a browse session: it turns key
// messages into navigation events, keeps the saved position current, and
// renders the paged listing.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rompick/rompick/internal/browser"
	"github.com/rompick/rompick/internal/keymap"
	"github.com/rompick/rompick/internal/state"
)

// chromeRows is the vertical space spent around the listing: the title row,
// the path row, the separator and the footer.
const chromeRows = 4

// Model is the bubbletea model for one browse session.
type Model struct {
	session  *browser.Session
	stateMgr state.Interface
	keys     *keymap.Resolver

	width  int
	height int

	showHelp bool
	err      error
}

// New wraps a live session. The model does not own the session's budget or
// the state manager; main releases those after the program ends.
func New(session *browser.Session, stateMgr state.Interface) Model {
	return Model{
		session:  session,
		stateMgr: stateMgr,
		keys:     keymap.NewResolver(keymap.Bindings),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the confirmed ROM pick, nil when the session ended
// without one. The caller takes over the selection's path builder.
func (m Model) Selection() *browser.Selection {
	return m.session.Result()
}

// Err returns the error that ended the session, nil for a clean selection or
// abort.
func (m Model) Err() error {
	return m.err
}
