package watchlist

import (
	"sync"

	"github.com/five82/filmfinder/internal/omdb"
)

// EventKind names the mutation that produced an Event.
type EventKind int

const (
	EventAdded EventKind = iota
	EventRemoved
	EventReplaced
)

// Event is delivered to subscribers after every effective mutation.
type Event struct {
	Kind    EventKind
	Movie   omdb.MovieSummary // zero for EventReplaced
	Items   []omdb.MovieSummary
	Version uint64
}

// Store is an ordered set of movie summaries keyed by ID. The zero value is
// an empty, ready to use store.
type Store struct {
	mu          sync.Mutex
	items       []omdb.MovieSummary
	version     uint64
	nextSub     int
	subscribers map[int]func(Event)
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Add appends movie unless an entry with the same ID exists.
func (s *Store) Add(movie omdb.MovieSummary) {
	s.mu.Lock()
	if s.indexLocked(movie.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items, movie)
	ev := s.eventLocked(EventAdded, movie)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, ev)
}

// Remove drops every entry whose ID matches movie.ID.
func (s *Store) Remove(movie omdb.MovieSummary) {
	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.ID != movie.ID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(s.items) {
		s.mu.Unlock()
		return
	}
	s.items = kept
	ev := s.eventLocked(EventRemoved, movie)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, ev)
}

// Toggle adds movie when absent and removes it otherwise. It reports whether
// the movie is in the store afterwards.
func (s *Store) Toggle(movie omdb.MovieSummary) bool {
	if s.Contains(movie.ID) {
		s.Remove(movie)
		return false
	}
	s.Add(movie)
	return true
}

// Replace swaps the whole contents, keeping the first entry per ID.
func (s *Store) Replace(items []omdb.MovieSummary) {
	s.mu.Lock()
	seen := make(map[string]struct{}, len(items))
	next := make([]omdb.MovieSummary, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		next = append(next, item)
	}
	s.items = next
	ev := s.eventLocked(EventReplaced, omdb.MovieSummary{})
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, ev)
}

// Contains reports whether an entry with id exists.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(id) >= 0
}

// Items returns a copy of the entries in insertion order.
func (s *Store) Items() []omdb.MovieSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Version increments once per effective mutation, for polling consumers.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers fn for every subsequent mutation. Callbacks run
// synchronously on the mutating goroutine, after the store lock is released,
// so they may read the store. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscribers == nil {
		s.subscribers = make(map[int]func(Event))
	}
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) indexLocked(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) eventLocked(kind EventKind, movie omdb.MovieSummary) Event {
	s.version++
	return Event{Kind: kind, Movie: movie, Items: cloneItems(s.items), Version: s.version}
}

// subscribersLocked returns callbacks in registration order.
func (s *Store) subscribersLocked() []func(Event) {
	if len(s.subscribers) == 0 {
		return nil
	}
	out := make([]func(Event), 0, len(s.subscribers))
	for id := 0; id < s.nextSub; id++ {
		if fn, ok := s.subscribers[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}

func cloneItems(items []omdb.MovieSummary) []omdb.MovieSummary {
	out := make([]omdb.MovieSummary, len(items))
	copy(out, items)
	return out
}
