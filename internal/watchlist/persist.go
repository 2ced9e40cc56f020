package watchlist

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/five82/filmfinder/internal/kv"
	"github.com/five82/filmfinder/internal/omdb"
)

// SlotKey names the persisted watchlist slot.
const SlotKey = "watchlist"

type slot struct {
	Movies []omdb.MovieSummary `toml:"movies"`
}

// Persist loads the saved watchlist into s and then rewrites the slot after
// every mutation. Read and write failures are logged, never returned: a
// broken slot must not stop the application from starting.
func Persist(s *Store, store kv.Store, logger *slog.Logger) (stop func()) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "watchlist")

	var saved slot
	switch err := store.Get(SlotKey, &saved); {
	case err == nil:
		s.Replace(saved.Movies)
		logger.Debug("restored watchlist", "entries", s.Len())
	case errors.Is(err, kv.ErrNotFound):
	default:
		logger.Warn("ignoring unreadable watchlist", "error", err)
	}

	// Observers run outside the store lock, so two mutations can deliver
	// their events out of order. Each save writes the current items under
	// one mutex, which leaves the slot holding the newest list.
	var mu sync.Mutex
	return s.Subscribe(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		if err := store.Put(SlotKey, slot{Movies: s.Items()}); err != nil {
			logger.Warn("failed to save watchlist", "error", err, "version", ev.Version)
		}
	})
}
