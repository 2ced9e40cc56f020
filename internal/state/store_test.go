package state

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/filmfinder/internal/omdb"
)

func pageOf(query string, ids ...string) omdb.SearchPage {
	movies := make([]omdb.MovieSummary, 0, len(ids))
	for _, id := range ids {
		movies = append(movies, omdb.MovieSummary{ID: id, Title: query})
	}
	return omdb.SearchPage{Query: query, Page: 1, Movies: movies, PageCount: 1, Status: omdb.StatusFound}
}

func TestStore_BeginResolveAndSnapshotClone(t *testing.T) {
	var s Store

	ticket := s.Begin("alien", 2)
	if ticket.Seq != 1 || ticket.Query != "alien" || ticket.Page != 2 {
		t.Fatalf("ticket = %#v, want seq 1 alien page 2", ticket)
	}
	if snap := s.Snapshot(); !snap.Loading() || snap.Query != "alien" || snap.Page != 2 {
		t.Fatalf("snapshot after Begin = %#v, want loading alien page 2", snap)
	}

	before := time.Now()
	if !s.Resolve(ticket, pageOf("alien", "tt1", "tt2"), nil) {
		t.Fatalf("Resolve returned false, want applied")
	}

	snap := s.Snapshot()
	if snap.Loading() {
		t.Fatalf("Loading() = true after resolve")
	}
	if !snap.HasResult || len(snap.Result.Movies) != 2 {
		t.Fatalf("snapshot result = %#v, want 2 movies", snap.Result)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	snap.Result.Movies[0].ID = "mutated"
	if got := s.Snapshot().Result.Movies[0].ID; got != "tt1" {
		t.Fatalf("Snapshot should clone movies; got id %q want tt1", got)
	}
}

func TestStore_ErrorKeepsPreviousResult(t *testing.T) {
	var s Store

	s.Resolve(s.Begin("alien", 1), pageOf("alien", "tt1"), nil)
	s.Resolve(s.Begin("alien", 2), omdb.SearchPage{}, errors.New("boom"))
	s.Resolve(s.Begin("alien", 2), omdb.SearchPage{}, errors.New("boom again"))

	snap := s.Snapshot()
	if len(snap.Result.Movies) != 1 || snap.Result.Movies[0].ID != "tt1" {
		t.Fatalf("result changed on error: %#v", snap.Result)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom again" {
		t.Fatalf("LastError = %v, want boom again", snap.LastError)
	}
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}

	s.Resolve(s.Begin("alien", 2), pageOf("alien", "tt3"), nil)
	snap = s.Snapshot()
	if snap.LastError != nil || snap.ConsecutiveFailures != 0 {
		t.Fatalf("success should clear error state: %#v", snap)
	}
}

func TestStore_LastResolvedWinsAppliesOutOfOrder(t *testing.T) {
	var s Store

	slow := s.Begin("bat", 1)
	fast := s.Begin("batman", 1)

	if !s.Resolve(fast, pageOf("batman", "tt2"), nil) {
		t.Fatalf("fast resolve not applied")
	}
	if !s.Resolve(slow, pageOf("bat", "tt1"), nil) {
		t.Fatalf("slow resolve not applied under LastResolvedWins")
	}
	if got := s.Snapshot().Result.Query; got != "bat" {
		t.Fatalf("result query = %q, want bat (last resolved)", got)
	}
}

func TestStore_DiscardStaleDropsOlderTickets(t *testing.T) {
	s := NewStore(DiscardStale)

	slow := s.Begin("bat", 1)
	fast := s.Begin("batman", 1)

	s.Resolve(fast, pageOf("batman", "tt2"), nil)
	if s.Resolve(slow, pageOf("bat", "tt1"), nil) {
		t.Fatalf("stale resolve applied under DiscardStale")
	}

	snap := s.Snapshot()
	if snap.Result.Query != "batman" {
		t.Fatalf("result query = %q, want batman", snap.Result.Query)
	}
	if snap.Pending != 0 {
		t.Fatalf("Pending = %d, want 0 after both resolved", snap.Pending)
	}
}

func TestPolicy_String(t *testing.T) {
	if got := DiscardStale.String(); got != "discard-stale" {
		t.Fatalf("String() = %q, want discard-stale", got)
	}
	if got := Policy(9).String(); got != "policy(9)" {
		t.Fatalf("String() = %q, want policy(9)", got)
	}
}
