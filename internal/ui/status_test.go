package ui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/filmfinder/internal/omdb"
	"github.com/five82/filmfinder/internal/state"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		kind omdb.Kind
		want string
	}{
		{"invalid", omdb.KindInvalidRequest, "Invalid request. Check the search text and page."},
		{"transport", omdb.KindTransport, "Network error: the movie database could not be reached."},
		{"malformed", omdb.KindMalformedResponse, "The movie database sent a response that could not be read."},
		{"decoding", omdb.KindDecoding, "Movie details were incomplete or in an unexpected format."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &omdb.Error{Kind: tt.kind, Op: "search", Err: errors.New("cause")}
			if got := ErrorText(err); got != tt.want {
				t.Fatalf("ErrorText() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := ErrorText(errors.New("boom")); got != "Something went wrong: boom" {
		t.Fatalf("ErrorText(plain) = %q", got)
	}
}

func TestSearchStatus(t *testing.T) {
	var s state.Store
	if text, kind := searchStatus(s.Snapshot()); text != msgIdle || kind != statusIdle {
		t.Fatalf("idle status = %q/%v", text, kind)
	}

	ticket := s.Begin("alien", 1)
	if text, kind := searchStatus(s.Snapshot()); text != msgSearching || kind != statusLoading {
		t.Fatalf("loading status = %q/%v", text, kind)
	}

	s.Resolve(ticket, omdb.SearchPage{Page: 1, PageCount: 3, TotalResults: 23, Status: omdb.StatusFound}, nil)
	snap := s.Snapshot()
	if text, _ := searchStatus(snap); text != "Found 23 movies." {
		t.Fatalf("found status = %q", text)
	}
	if got := pagerText(snap); got != "Page 1/3" {
		t.Fatalf("pagerText() = %q, want Page 1/3", got)
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		n, selected, rows int
		start, end        int
	}{
		{5, 0, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := visibleWindow(tt.n, tt.selected, tt.rows)
		if start != tt.start || end != tt.end {
			t.Fatalf("visibleWindow(%d,%d,%d) = %d,%d want %d,%d",
				tt.n, tt.selected, tt.rows, start, end, tt.start, tt.end)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  The Lord of the Rings  ", 10); got != "The Lor..." {
		t.Fatalf("truncate() = %q", got)
	}
	if got := truncate("Heat", 10); got != "Heat" {
		t.Fatalf("truncate() = %q", got)
	}
}

func TestThemeCycle(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	names := ThemeNames()
	for i, name := range names {
		if got, want := NextTheme(name), names[(i+1)%len(names)]; got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", name, got, want)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox", got)
	}
}

func TestStatusTextStyle(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	tests := []struct {
		kind statusKind
		want lipgloss.Style
	}{
		{statusFound, styles.SuccessText},
		{statusError, styles.DangerText},
		{statusEmpty, styles.Text},
		{statusIdle, styles.Text},
	}
	for _, tt := range tests {
		if got := statusTextStyle(styles, tt.kind).GetForeground(); got != tt.want.GetForeground() {
			t.Fatalf("statusTextStyle(%d) foreground = %v, want %v", tt.kind, got, tt.want.GetForeground())
		}
	}
}
