package services

import (
	"sync"

	"github.com/Dosada05/bracket-editor/models"
)

// MaxHistory caps the number of undo steps kept per session.
const MaxHistory = 50

// History is a linear undo/redo stack of deep-copied editor states. Index
// points at the entry matching the live state.
type History struct {
	mu      sync.Mutex
	entries []models.HistoryEntry
	index   int
	limit   int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = MaxHistory
	}
	return &History{index: -1, limit: limit}
}

// Push records a new state, dropping any redo tail and the oldest entries
// beyond the limit.
func (h *History) Push(entry models.HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.index+1], entry)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]models.HistoryEntry(nil), h.entries[over:]...)
	}
	h.index = len(h.entries) - 1
}

func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index > 0
}

func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index < len(h.entries)-1
}

// Undo steps back one entry and returns a copy of it.
func (h *History) Undo() (models.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index <= 0 {
		return models.HistoryEntry{}, ErrNothingToUndo
	}
	h.index--
	return h.current(), nil
}

// Redo steps forward one entry and returns a copy of it.
func (h *History) Redo() (models.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index >= len(h.entries)-1 {
		return models.HistoryEntry{}, ErrNothingToRedo
	}
	h.index++
	return h.current(), nil
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) current() models.HistoryEntry {
	e := h.entries[h.index]
	return models.NewHistoryEntry(e.Bracket, e.Teams, e.Timestamp)
}
