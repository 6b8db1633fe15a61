// Package tui provides a Bubble Tea terminal UI for the Life RPG engine.
package tui

// History keeps submitted commands for Up/Down recall. The oldest entry
// is dropped once max is reached.
type History struct {
	entries []string
	max     int
	cursor  int // -1 while not navigating
}

// NewHistory creates a history holding at most max entries.
func NewHistory(max int) *History {
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// Push records a command. Repeating the newest entry is a no-op.
func (h *History) Push(cmd string) {
	if last, ok := h.Last(); ok && last == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Last returns the newest entry without moving the cursor.
func (h *History) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Len reports the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Prev steps toward older entries, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps toward newer entries. Moving past the newest returns false
// and leaves navigation.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor leaves navigation mode.
func (h *History) ResetCursor() {
	h.cursor = -1
}
