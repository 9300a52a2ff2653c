package browser

import "sort"

// Kind classifies a listing entry.
type Kind uint8

const (
	KindFile Kind = iota
	KindDirectory
)

// Entry is one row of a directory listing. Its name is owned by the list
// holding it and charged against the session budget.
type Entry struct {
	Kind Kind
	Name string
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// less orders directories before files and breaks ties by raw byte
// comparison of names. No locale rules, no case folding.
func less(a, b Entry) bool {
	if a.Kind != b.Kind {
		return a.Kind == KindDirectory
	}
	return a.Name < b.Name
}

// sortEntries sorts a listing in place. The sort is not stable; entries
// comparing equal have no defined relative order.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}
