package browser

import (
	"fmt"
	"io"
	"strings"

	"github.com/rompick/rompick/internal/mem"
)

// dirReadBatch is the number of entries requested from the read service per
// call.
const dirReadBatch = 10

// Scanner builds sorted, filtered listings through a DirReader, charging
// them against a shared budget.
type Scanner struct {
	reader DirReader
	budget *mem.Budget
}

func NewScanner(reader DirReader, budget *mem.Budget) (*Scanner, error) {
	if reader == nil || budget == nil {
		return nil, ErrInvalidArgument
	}
	return &Scanner{reader: reader, budget: budget}, nil
}

// Scan lists path into a fresh EntryList, sorted on success. Directories are
// admitted unconditionally; files only when their name is strictly longer
// than suffix, ends with it byte for byte, and does not start with a dot.
//
// prev, if non-nil, is destroyed before anything else happens, whether the
// call succeeds or fails: afterwards the caller owns only the returned list.
// On failure no list is returned and everything built so far has been
// released.
func (s *Scanner) Scan(path, suffix string, prev *EntryList) (*EntryList, error) {
	prev.Destroy()
	if path == "" {
		return nil, ErrInvalidArgument
	}

	list, err := newEntryList(s.budget)
	if err != nil {
		return nil, err
	}

	dir, err := s.reader.OpenDir(path)
	if err != nil {
		list.Destroy()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer dir.Close()

	for {
		batch, rerr := dir.ReadBatch(dirReadBatch)
		for _, de := range batch {
			if !admit(de, suffix) {
				continue
			}
			kind := KindFile
			if de.IsDir {
				kind = KindDirectory
			}
			if aerr := list.Append(kind, de.Name); aerr != nil {
				// Append already destroyed the list.
				return nil, aerr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			list.Destroy()
			return nil, fmt.Errorf("read %s: %w", path, rerr)
		}
	}

	list.Sort()
	return list, nil
}

// admit applies the suffix filter. Directories always pass, dotted ones
// included; dotfiles never do.
func admit(de DirEntry, suffix string) bool {
	if de.IsDir {
		return true
	}
	if len(de.Name) <= len(suffix) {
		return false
	}
	if de.Name[0] == '.' {
		return false
	}
	return strings.HasSuffix(de.Name, suffix)
}
