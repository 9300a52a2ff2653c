package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rompick/rompick/internal/browser"
	"github.com/rompick/rompick/internal/keymap"
	"github.com/rompick/rompick/internal/logging"
	"github.com/rompick/rompick/internal/state"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.SetPageSize(max(1, msg.Height-chromeRows))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}

	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch key {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m.navigate(browser.EvAbort)
	case keymap.ActionHelp:
		m.showHelp = true
		return m, nil
	case keymap.ActionMoveUp:
		return m.navigate(browser.EvStepUp)
	case keymap.ActionMoveDown:
		return m.navigate(browser.EvStepDown)
	case keymap.ActionPageDown:
		return m.navigate(browser.EvPageForward)
	case keymap.ActionPageUp:
		return m.navigate(browser.EvPageBackward)
	case keymap.ActionSelect:
		return m.navigate(browser.EvConfirm)
	case keymap.ActionBack:
		return m.navigate(browser.EvBack)
	}

	return m, nil
}

// navigate applies one event to the session. A selection or an abort ends the
// program; so does a session error, which main reads back from Err. Anything
// else schedules a debounced save of the new position.
func (m Model) navigate(ev browser.Event) (tea.Model, tea.Cmd) {
	status, err := m.session.Handle(ev)
	if err != nil {
		m.err = err
		logging.Error("browse session failed", zap.Error(err))
		return m, tea.Quit
	}

	switch status {
	case browser.StatusSelected:
		logging.Info("rom selected",
			zap.String("path", m.session.Result().Path.String()))
		return m, tea.Quit
	case browser.StatusAborted:
		logging.Info("browse aborted")
		return m, tea.Quit
	}

	m.stateMgr.SaveNavigation(state.NavigationState{
		LastDir:      m.session.Path(),
		SelectedName: m.session.SelectedName(),
	})
	return m, nil
}
