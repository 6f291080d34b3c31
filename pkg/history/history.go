// Package history keeps the back/forward list of visited paths.
package history

// History is a linear list of visited paths with a cursor.
// The cursor is a valid index into the list, or -1 while the list is empty.
type History struct {
	entries []string
	cursor  int
}

// Snapshot is an immutable copy of a History.
type Snapshot struct {
	Entries []string
	Cursor  int
}

func (s Snapshot) CanGoBack() bool {
	return s.Cursor > 0
}

func (s Snapshot) CanGoForward() bool {
	return s.Cursor < len(s.Entries)-1
}

func New() *History {
	return &History{cursor: -1}
}

// Visit drops every entry after the cursor and appends path.
func (h *History) Visit(path string) {
	if h.cursor != len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, path)
	h.cursor = len(h.entries) - 1
}

// Back moves the cursor one step back. At the start it returns false and changes nothing.
func (h *History) Back() (string, bool) {
	if h.cursor <= 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one step forward. At the tail it returns false and changes nothing.
func (h *History) Forward() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *History) Cursor() int {
	return h.cursor
}

// Current returns the entry under the cursor.
func (h *History) Current() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	return h.entries[h.cursor], true
}

func (h *History) Entries() []string {
	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *History) CanGoBack() bool {
	return h.cursor > 0
}

func (h *History) CanGoForward() bool {
	return h.cursor < len(h.entries)-1
}

func (h *History) Snapshot() Snapshot {
	return Snapshot{Entries: h.Entries(), Cursor: h.cursor}
}
