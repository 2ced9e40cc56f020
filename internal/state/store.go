package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/filmfinder/internal/omdb"
)

// Policy decides what happens when search results arrive out of order.
type Policy int

const (
	// LastResolvedWins applies every result in arrival order, so a slow
	// earlier request can overwrite a newer one.
	LastResolvedWins Policy = iota
	// DiscardStale drops results whose ticket is older than the last one
	// applied.
	DiscardStale
)

func (p Policy) String() string {
	switch p {
	case LastResolvedWins:
		return "last-resolved-wins"
	case DiscardStale:
		return "discard-stale"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Ticket identifies one issued search request.
type Ticket struct {
	Seq   uint64
	Query string
	Page  int
}

// Snapshot represents the latest search data available to the UI.
type Snapshot struct {
	Query               string // most recently requested query
	Page                int    // most recently requested page
	Pending             int    // requests issued but not yet resolved
	Result              omdb.SearchPage
	HasResult           bool
	AppliedSeq          uint64
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Loading reports whether any request is still in flight.
func (s Snapshot) Loading() bool {
	return s.Pending > 0
}

// Store coordinates search requests and their results.
type Store struct {
	mu       sync.RWMutex
	policy   Policy
	seq      uint64
	snapshot Snapshot
}

// NewStore returns a store using policy. The zero Store uses
// LastResolvedWins.
func NewStore(policy Policy) *Store {
	return &Store{policy: policy}
}

// Policy returns the ordering policy in effect.
func (s *Store) Policy() Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// Begin records a new request and returns its ticket.
func (s *Store) Begin(query string, page int) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.snapshot.Query = query
	s.snapshot.Page = page
	s.snapshot.Pending++
	return Ticket{Seq: s.seq, Query: query, Page: page}
}

// Resolve records the outcome of the request behind t and reports whether it
// was applied. When err is non-nil the previous result is kept but the error
// is recorded for visibility.
func (s *Store) Resolve(t Ticket, page omdb.SearchPage, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Pending > 0 {
		s.snapshot.Pending--
	}
	if s.policy == DiscardStale && t.Seq < s.snapshot.AppliedSeq {
		return false
	}

	s.snapshot.AppliedSeq = t.Seq
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return true
	}

	page.Movies = cloneMovies(page.Movies)
	s.snapshot.Result = page
	s.snapshot.HasResult = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Result.Movies = cloneMovies(s.snapshot.Result.Movies)
	return snap
}

func cloneMovies(items []omdb.MovieSummary) []omdb.MovieSummary {
	if len(items) == 0 {
		return nil
	}
	dup := make([]omdb.MovieSummary, len(items))
	copy(dup, items)
	return dup
}
