package browser

import (
	"errors"
	"io/fs"

	"github.com/rompick/rompick/internal/mem"
)

// ErrInvalidArgument reports a nil or contradictory input to an entry point.
// Nothing is mutated when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfMemory reports a denied budget reservation. Whatever the failed
// operation had built is released before it returns.
var ErrOutOfMemory = mem.ErrBudgetExhausted

// IsNotExist reports whether err means the browsed path does not exist, as
// opposed to any other read-service failure.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
