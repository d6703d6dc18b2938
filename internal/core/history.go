package core

import (
	"time"

	"dhtview/internal/model"
)

// DefaultHistorySize is how many status lines the dashboard shows.
const DefaultHistorySize = 6

// History keeps the most recent status messages, oldest first.
type History struct {
	entries []model.LogEntry
	size    int
	now     func() time.Time
}

// NewHistory returns an empty History holding at most size entries.
func NewHistory(size int, now func() time.Time) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	if now == nil {
		now = time.Now
	}
	return &History{entries: make([]model.LogEntry, 0, size+1), size: size, now: now}
}

// Add appends a message stamped with the current wall clock and evicts the
// oldest entry once the history is over capacity.
func (h *History) Add(kind model.LogKind, msg string) {
	h.entries = append(h.entries, model.LogEntry{
		Time:    h.now().Format("15:04:05"),
		Message: msg,
		Kind:    kind,
	})
	if len(h.entries) > h.size {
		h.entries = append(h.entries[:0], h.entries[1:]...)
	}
}

// Entries returns a copy of the held entries in insertion order.
func (h *History) Entries() []model.LogEntry {
	out := make([]model.LogEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of held entries.
func (h *History) Len() int { return len(h.entries) }
