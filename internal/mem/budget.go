// Package mem tracks bytes reserved by owning containers against a fixed
// ceiling, so that release obligations are observable instead of implied.
package mem

import (
	"errors"
	"sync"
)

// DefaultLimit is the budget used when no explicit limit is configured.
const DefaultLimit = 16 << 20

// ErrBudgetExhausted is returned by Reserve when the requested bytes would
// push usage past the limit.
var ErrBudgetExhausted = errors.New("memory budget exhausted")

// Budget tracks reserved bytes against a limit. A limit of 0 disables the
// ceiling but still keeps the accounting, which is what tests assert against.
type Budget struct {
	mu    sync.Mutex
	limit int
	used  int
}

// NewBudget creates a budget with the given byte limit. limit <= 0 means
// unlimited.
func NewBudget(limit int) *Budget {
	if limit < 0 {
		limit = 0
	}
	return &Budget{limit: limit}
}

// Reserve takes n bytes from the budget. It either reserves the full amount
// or nothing.
func (b *Budget) Reserve(n int) error {
	if n < 0 {
		panic("mem: negative reservation")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.limit > 0 && b.used+n > b.limit {
		return ErrBudgetExhausted
	}
	b.used += n
	return nil
}

// Release returns n previously reserved bytes to the budget. Releasing more
// than is currently reserved panics.
func (b *Budget) Release(n int) {
	if n < 0 {
		panic("mem: negative release")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.used -= n
	if b.used < 0 {
		panic("mem: released more than reserved")
	}
}

// Used returns the bytes currently reserved.
func (b *Budget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// Limit returns the configured ceiling, 0 if unlimited.
func (b *Budget) Limit() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limit
}
