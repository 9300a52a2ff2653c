package browser

import "github.com/rompick/rompick/internal/mem"

const (
	// listGrowStep is both the initial slot capacity of a listing and the
	// fixed number of slots added per growth.
	listGrowStep = 128

	// entrySlotSize approximates the cost of one entry slot: a string
	// header plus the kind tag, padded.
	entrySlotSize = 24
)

// EntryList is an owning, growable directory listing. The backing slots and
// every admitted name are charged against a budget; Destroy returns the
// charges. Lists grow by a fixed step and never shrink.
type EntryList struct {
	budget    *mem.Budget
	entries   []Entry
	capacity  int
	nameBytes int
	destroyed bool
}

func newEntryList(budget *mem.Budget) (*EntryList, error) {
	if budget == nil {
		return nil, ErrInvalidArgument
	}
	if err := budget.Reserve(listGrowStep * entrySlotSize); err != nil {
		return nil, err
	}
	return &EntryList{
		budget:   budget,
		entries:  make([]Entry, 0, listGrowStep),
		capacity: listGrowStep,
	}, nil
}

// Append admits one entry, growing the backing by listGrowStep when full and
// charging the name bytes. On any failed reservation the list destroys
// itself: the caller must treat the whole listing as gone.
func (l *EntryList) Append(kind Kind, name string) error {
	if l == nil || l.destroyed {
		return ErrInvalidArgument
	}
	if len(l.entries) == l.capacity {
		if err := l.grow(); err != nil {
			return err
		}
	}
	if err := l.budget.Reserve(len(name)); err != nil {
		l.Destroy()
		return err
	}
	l.nameBytes += len(name)
	l.entries = append(l.entries, Entry{Kind: kind, Name: name})
	return nil
}

func (l *EntryList) grow() error {
	newCapacity := l.capacity + listGrowStep
	if err := l.budget.Reserve(newCapacity * entrySlotSize); err != nil {
		l.Destroy()
		return err
	}
	grown := make([]Entry, len(l.entries), newCapacity)
	copy(grown, l.entries)
	l.budget.Release(l.capacity * entrySlotSize)
	l.entries = grown
	l.capacity = newCapacity
	return nil
}

// Sort orders the listing directories first, then byte-wise by name.
func (l *EntryList) Sort() {
	if l == nil || l.destroyed {
		return
	}
	sortEntries(l.entries)
}

// Len returns the number of entries. A destroyed or nil list is empty.
func (l *EntryList) Len() int {
	if l == nil || l.destroyed {
		return 0
	}
	return len(l.entries)
}

// Cap returns the current slot capacity.
func (l *EntryList) Cap() int {
	if l == nil || l.destroyed {
		return 0
	}
	return l.capacity
}

// At returns the entry at index i. The index must be within [0, Len()).
func (l *EntryList) At(i int) Entry {
	return l.entries[i]
}

// Destroy releases every name charge and the backing charge. It is safe on
// nil lists and after a previous Destroy.
func (l *EntryList) Destroy() {
	if l == nil || l.destroyed {
		return
	}
	l.destroyed = true
	l.budget.Release(l.nameBytes)
	l.budget.Release(l.capacity * entrySlotSize)
	l.entries = nil
	l.nameBytes = 0
}
