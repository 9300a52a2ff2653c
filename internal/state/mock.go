// internal/state/mock.go
package state

import "time"

// Mock is a test double for Manager.
type Mock struct {
	navState  *NavigationState
	saveCalls []NavigationState
	launches  []Launch
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveNavigation(state NavigationState) {
	m.navState = &state
	m.saveCalls = append(m.saveCalls, state)
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) RecordLaunch(nav NavigationState, romPath string, romSize int64) error {
	m.navState = &nav
	m.launches = append([]Launch{{RomPath: romPath, RomSize: romSize, LaunchedAt: time.Now()}}, m.launches...)
	return nil
}

func (m *Mock) RecentLaunches(limit int) ([]Launch, error) {
	if limit <= 0 || limit > len(m.launches) {
		limit = len(m.launches)
	}
	return m.launches[:limit], nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) SaveCalls() []NavigationState { return m.saveCalls }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
