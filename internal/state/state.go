// Package state persists the browser position and launch history in a
// sqlite database under the XDG data directory, so the next run resumes
// where the last one ended.
package state

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/rompick/rompick/internal/logging"
)

const (
	appName      = "rompick"
	dbFileName   = "rompick.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database. SaveNavigation is debounced so rapid
// cursor movement collapses into one write; Close flushes whatever is still
// pending.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *NavigationState
}

// Open creates or opens the state database. xdg.DataFile takes care of the
// parent directories.
func Open() (*Manager, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init state schema: %w", err)
	}

	return &Manager{db: db}, nil
}

// Close stops the debounce timer, flushes any pending navigation state, and
// closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		if err := saveNavigation(m.db, *pending); err != nil {
			logging.Error("final navigation save failed", zap.Error(err))
		}
	}

	return m.db.Close()
}

// GetNavigation returns the saved browser position, nil when none was ever
// saved.
func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation schedules a debounced write of the navigation state. Only
// the newest state of the debounce window lands.
func (m *Manager) SaveNavigation(state NavigationState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state
	if m.saveTimer == nil {
		m.saveTimer = time.AfterFunc(saveDebounce, m.flushPending)
		return
	}
	m.saveTimer.Reset(saveDebounce)
}

func (m *Manager) flushPending() {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return
	}
	if err := saveNavigation(m.db, *pending); err != nil {
		logging.Error("navigation save failed",
			zap.String("dir", pending.LastDir), zap.Error(err))
	}
}
