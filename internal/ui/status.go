package ui

import (
	"fmt"

	"github.com/five82/filmfinder/internal/omdb"
	"github.com/five82/filmfinder/internal/state"
)

// statusKind selects the badge color of the status line.
type statusKind int

const (
	statusIdle statusKind = iota
	statusLoading
	statusFound
	statusEmpty
	statusError
)

// Status messages shown below the results.
const (
	msgIdle      = "Press / to search the movie catalog."
	msgSearching = "Searching..."
	msgNoResults = "No results found! Please refine your search."
)

// searchStatus describes the latest search outcome for the status line.
func searchStatus(snap state.Snapshot) (string, statusKind) {
	switch {
	case snap.Loading():
		return msgSearching, statusLoading
	case snap.LastError != nil:
		return ErrorText(snap.LastError), statusError
	case !snap.HasResult:
		return msgIdle, statusIdle
	case snap.Result.NoResults():
		return ResultSummary(snap.Result), statusEmpty
	default:
		return ResultSummary(snap.Result), statusFound
	}
}

// ResultSummary is the one-line outcome of a search page.
func ResultSummary(page omdb.SearchPage) string {
	if page.NoResults() {
		return msgNoResults
	}
	return fmt.Sprintf("Found %d movies.", page.TotalResults)
}

// ErrorText renders a human-readable line per failure kind.
func ErrorText(err error) string {
	switch omdb.KindOf(err) {
	case omdb.KindInvalidRequest:
		return "Invalid request. Check the search text and page."
	case omdb.KindTransport:
		return "Network error: the movie database could not be reached."
	case omdb.KindMalformedResponse:
		return "The movie database sent a response that could not be read."
	case omdb.KindDecoding:
		return "Movie details were incomplete or in an unexpected format."
	default:
		return "Something went wrong: " + err.Error()
	}
}

// pagerText renders "Page x/y" for the current result, or "" when there is
// nothing to page through.
func pagerText(snap state.Snapshot) string {
	if !snap.HasResult || snap.Result.NoResults() {
		return ""
	}
	return fmt.Sprintf("Page %d/%d", snap.Result.Page, snap.Result.PageCount)
}
