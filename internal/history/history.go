// Package history keeps the most recent search terms, newest first, and
// persists them to a single key-value slot.
package history

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/five82/filmfinder/internal/kv"
)

const (
	// SlotKey names the persisted slot.
	SlotKey = "recentSearches"

	// MaxTerms bounds the history length.
	MaxTerms = 5
)

type slot struct {
	Terms []string `toml:"terms"`
}

// History is the recent-search list. Construct it with New; the zero value
// is not usable.
type History struct {
	mu     sync.Mutex
	store  kv.Store
	logger *slog.Logger
	terms  []string
}

// New returns a History backed by store, primed from the persisted slot.
// A nil logger discards output.
func New(store kv.Store, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &History{store: store, logger: logger.With("component", "history")}
	h.terms = h.Load()
	return h
}

// Record puts term at the front unless it is empty or already the newest
// entry. Older duplicates are left in place. The list is trimmed to MaxTerms
// and written to storage; the returned error reports only a failed write.
func (h *History) Record(term string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if term == "" || (len(h.terms) > 0 && h.terms[0] == term) {
		return nil
	}
	next := make([]string, 0, MaxTerms)
	next = append(next, term)
	next = append(next, h.terms...)
	if len(next) > MaxTerms {
		next = next[:MaxTerms]
	}
	h.terms = next
	return h.persistLocked(next)
}

// Load reads the persisted list. A missing, unreadable or corrupt slot
// yields an empty list; Load never fails.
func (h *History) Load() []string {
	var s slot
	if err := h.store.Get(SlotKey, &s); err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			h.logger.Debug("ignoring unreadable search history", "error", err)
		}
		return []string{}
	}
	terms := s.Terms
	if len(terms) > MaxTerms {
		terms = terms[:MaxTerms]
	}
	return cloneTerms(terms)
}

// Terms returns a copy of the in-memory list, newest first.
func (h *History) Terms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloneTerms(h.terms)
}

// Clear empties the history and the persisted slot.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.terms = nil
	return h.persistLocked([]string{})
}

// persistLocked writes terms while h.mu is held, so the slot always ends
// with the newest list when Record and Clear race.
func (h *History) persistLocked(terms []string) error {
	if err := h.store.Put(SlotKey, slot{Terms: terms}); err != nil {
		h.logger.Warn("failed to save search history", "error", err)
		return fmt.Errorf("save search history: %w", err)
	}
	return nil
}

func cloneTerms(terms []string) []string {
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}
