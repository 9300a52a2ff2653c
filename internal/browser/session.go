package browser

// Event is one discrete navigation input.
type Event int

const (
	EvNone Event = iota
	EvStepUp
	EvStepDown
	EvPageForward
	EvPageBackward
	EvConfirm
	EvBack
	EvAbort
)

// Status reports where a session stands after handling an event.
type Status int

const (
	// StatusBrowsing means the session is live and wants more events.
	StatusBrowsing Status = iota
	// StatusSelected means a file was confirmed; Result holds the selection.
	StatusSelected
	// StatusAborted means the session ended without a selection.
	StatusAborted
)

// Selection is the outcome of confirming a file. Ownership of the builder
// moves to the caller, who must Destroy it; LastDir is the directory the
// file was picked from.
type Selection struct {
	Path    *PathBuilder
	LastDir string
}

// Session drives one interactive browse: a sorted listing of the current
// directory, a wrapping cursor, and a window of pageSize rows. Exactly one
// EntryList and one PathBuilder are live at any time; every way out of the
// session releases both, except that a Selection carries the builder with
// it.
type Session struct {
	scanner  *Scanner
	suffix   string
	pageSize int

	path *PathBuilder
	list *EntryList
	cur  cursor

	status    Status
	selection *Selection
	closed    bool
}

// NewSession scans basePath and returns a live session positioned at its
// first entry. pageSize is the number of visible rows and must be at least
// one.
func NewSession(scanner *Scanner, basePath, suffix string, pageSize int) (*Session, error) {
	if scanner == nil || basePath == "" || pageSize < 1 {
		return nil, ErrInvalidArgument
	}
	path, err := newPathBuilder(scanner.budget, basePath)
	if err != nil {
		return nil, err
	}
	list, err := scanner.Scan(basePath, suffix, nil)
	if err != nil {
		path.Destroy()
		return nil, err
	}
	return &Session{
		scanner:  scanner,
		suffix:   suffix,
		pageSize: pageSize,
		path:     path,
		list:     list,
	}, nil
}

// Handle applies one event. After StatusSelected the selection is available
// from Result; after StatusAborted, or any returned error, the session has
// released its state and must not be handled further.
func (s *Session) Handle(ev Event) (Status, error) {
	if s.closed {
		return s.status, ErrInvalidArgument
	}

	switch ev {
	case EvNone:
		return s.status, nil

	case EvAbort:
		s.Close()
		s.status = StatusAborted
		return s.status, nil

	case EvStepUp:
		s.cur.step(-1, s.list.Len(), s.pageSize)
		return s.status, nil

	case EvStepDown:
		s.cur.step(1, s.list.Len(), s.pageSize)
		return s.status, nil

	case EvPageForward:
		s.cur.pageForward(s.list.Len(), s.pageSize)
		return s.status, nil

	case EvPageBackward:
		s.cur.pageBackward(s.list.Len(), s.pageSize)
		return s.status, nil

	case EvConfirm:
		return s.confirm()

	case EvBack:
		s.path.TruncateToParent()
		if err := s.rescan(); err != nil {
			return s.status, err
		}
		return s.status, nil
	}

	return s.status, ErrInvalidArgument
}

// confirm drills into a directory or resolves the session on a file. An
// empty listing has nothing to confirm and the event is ignored.
func (s *Session) confirm() (Status, error) {
	if s.list.Len() == 0 {
		return s.status, nil
	}

	ent := s.list.At(s.cur.pos)
	if ent.IsDir() {
		if err := s.path.Append(ent.Name); err != nil {
			s.fail()
			return s.status, err
		}
		if err := s.rescan(); err != nil {
			return s.status, err
		}
		return s.status, nil
	}

	lastDir := s.path.String()
	if err := s.path.Append(ent.Name); err != nil {
		s.fail()
		return s.status, err
	}

	s.selection = &Selection{Path: s.path, LastDir: lastDir}
	s.path = nil // ownership moved into the selection
	s.list.Destroy()
	s.list = nil
	s.closed = true
	s.status = StatusSelected
	return s.status, nil
}

// rescan replaces the listing with a fresh scan of the current path and
// resets the cursor. On failure the session is closed with everything
// released.
func (s *Session) rescan() error {
	list, err := s.scanner.Scan(s.path.String(), s.suffix, s.list)
	s.list = list
	if err != nil {
		s.fail()
		return err
	}
	s.cur.reset()
	return nil
}

// fail releases whatever a failed operation left behind and closes the
// session. Components that already destroyed themselves are unaffected.
func (s *Session) fail() {
	s.list.Destroy()
	s.list = nil
	s.path.Destroy()
	s.path = nil
	s.closed = true
}

// Close releases the listing and the path unless ownership already moved
// into a Selection. It is safe to call more than once.
func (s *Session) Close() {
	s.list.Destroy()
	s.list = nil
	s.path.Destroy()
	s.path = nil
	s.closed = true
}

// Status returns the session status.
func (s *Session) Status() Status {
	return s.status
}

// Result returns the selection after StatusSelected, nil otherwise.
func (s *Session) Result() *Selection {
	return s.selection
}

// Path returns the directory currently displayed.
func (s *Session) Path() string {
	return s.path.String()
}

// Size returns the number of entries in the current listing.
func (s *Session) Size() int {
	return s.list.Len()
}

// Cursor returns the absolute index of the selected row.
func (s *Session) Cursor() int {
	return s.cur.pos
}

// WindowStart returns the absolute index of the first visible row.
func (s *Session) WindowStart() int {
	return s.cur.offset
}

// SelectedName returns the name under the cursor, empty when the listing is
// empty.
func (s *Session) SelectedName() string {
	if s.list.Len() == 0 {
		return ""
	}
	return s.list.At(s.cur.pos).Name
}

// FocusName moves the cursor to the entry with the given name, scrolling the
// window after it. Used to restore the previous session's position; names not
// in the listing leave the cursor where it is and report false.
func (s *Session) FocusName(name string) bool {
	if s.closed || name == "" {
		return false
	}
	for i := 0; i < s.list.Len(); i++ {
		if s.list.At(i).Name == name {
			s.cur.pos = i
			s.cur.follow(s.list.Len(), s.pageSize)
			return true
		}
	}
	return false
}

// Visible returns the entries of the current window in display order.
func (s *Session) Visible() []Entry {
	start, end := s.cur.visibleRange(s.list.Len(), s.pageSize)
	if start == end {
		return nil
	}
	out := make([]Entry, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, s.list.At(i))
	}
	return out
}

// PageSize returns the current window height in rows.
func (s *Session) PageSize() int {
	return s.pageSize
}

// SetPageSize adjusts the window height, keeping the cursor visible. Values
// below one are ignored.
func (s *Session) SetPageSize(n int) {
	if n < 1 || s.closed {
		return
	}
	s.pageSize = n
	s.cur.clampWindow(s.list.Len(), s.pageSize)
}
