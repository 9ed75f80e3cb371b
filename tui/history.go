// Package tui provides a Bubble Tea terminal UI for the AdventureCore
// engine.
package tui

// History remembers submitted commands for up/down recall in the input
// field. A cursor walks from newest to oldest; pos == len(lines) means the
// player is typing fresh input, not navigating.
type History struct {
	lines []string
	limit int
	pos   int
}

// NewHistory creates a history buffer that keeps at most limit entries.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a submitted command and leaves the cursor on fresh input.
// Resubmitting the previous command adds nothing; past the limit the
// oldest entry falls off.
func (h *History) Push(cmd string) {
	if n := len(h.lines); n == 0 || h.lines[n-1] != cmd {
		h.lines = append(h.lines, cmd)
		if len(h.lines) > h.limit {
			h.lines = h.lines[1:]
		}
	}
	h.pos = len(h.lines)
}

// Prev steps the cursor toward older entries, sticking at the oldest.
// Reports false only when the history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.lines[h.pos], true
}

// Next steps the cursor toward newer entries. Stepping past the newest
// returns to fresh input and reports false.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.lines) {
		return "", false
	}
	return h.lines[h.pos], true
}

// ResetCursor returns the cursor to fresh input.
func (h *History) ResetCursor() {
	h.pos = len(h.lines)
}
