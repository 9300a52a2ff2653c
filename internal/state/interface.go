// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	RecordLaunch(nav NavigationState, romPath string, romSize int64) error
	RecentLaunches(limit int) ([]Launch, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
