package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/filmfinder/internal/app"
	"github.com/five82/filmfinder/internal/config"
	"github.com/five82/filmfinder/internal/omdb"
)

const searchBody = `{
	"Search": [
		{"Title": "Alien", "Year": "1979", "imdbID": "tt0078748", "Type": "movie", "Poster": "N/A"},
		{"Title": "Aliens", "Year": "1986", "imdbID": "tt0090605", "Type": "movie", "Poster": "N/A"}
	],
	"totalResults": "23",
	"Response": "True"
}`

func detailBody(id, title string) string {
	payload := map[string]string{
		"Title": title, "Year": "1979", "Rated": "R", "Released": "22 Jun 1979",
		"Runtime": "117 min", "Genre": "Horror, Sci-Fi", "Director": "Ridley Scott",
		"Writer": "Dan O'Bannon", "Actors": "Sigourney Weaver", "Plot": "In space.",
		"Language": "English", "Country": "UK, USA", "Awards": "Won 1 Oscar.",
		"Poster": "N/A", "imdbRating": "8.5", "imdbVotes": "950,000",
		"imdbID": id, "Type": "movie", "Response": "True",
	}
	body, _ := json.Marshal(payload)
	return string(body)
}

type env struct {
	fs  afero.Fs
	cfg config.Config
}

func setup(t *testing.T, handler http.HandlerFunc) env {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	e := env{fs: afero.NewMemMapFs(), cfg: config.Default()}
	e.cfg.APIKey = "test-key"
	e.cfg.APIBase = server.URL
	e.cfg.DataDir = "/data"
	e.cfg.LogFile = "/data/filmfinder.log"

	prev := newApp
	newApp = func() (*app.App, error) {
		return app.NewWithConfig(e.cfg, app.Options{
			Fs:     e.fs,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		})
	}
	t.Cleanup(func() {
		newApp = prev
		searchPage = 1
		jsonOutput = false
		historyClear = false
		logLines = 50
		logRaw = false
	})
	return e
}

func catalogHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("s") != "":
			_, _ = io.WriteString(w, searchBody)
		case q.Get("i") != "":
			_, _ = io.WriteString(w, detailBody(q.Get("i"), "Alien"))
		default:
			t.Errorf("unexpected request %s", r.URL)
		}
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := Execute(context.Background())
	return out.String(), err
}

func TestSearch_PrintsResultsAndRecordsHistory(t *testing.T) {
	setup(t, catalogHandler(t))

	out, err := run(t, "search", "alien")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 23 movies.")
	assert.Contains(t, out, "tt0090605")
	assert.Contains(t, out, "Page 1/3")

	out, err = run(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "1. alien\n", out)
}

func TestSearch_JSON(t *testing.T) {
	var gotPage string
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		_, _ = io.WriteString(w, searchBody)
	})

	out, err := run(t, "search", "alien", "--page", "2", "--json")
	require.NoError(t, err)
	assert.Equal(t, "2", gotPage)

	var page omdb.SearchPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, omdb.StatusFound, page.Status)
	assert.Equal(t, 2, page.Page)
	assert.Contains(t, out, `"status": "found"`)
}

func TestSearch_NoResults(t *testing.T) {
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Response":"False","Error":"Movie not found!"}`)
	})

	out, err := run(t, "search", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found! Please refine your search.")
	assert.Contains(t, out, "Movie not found!")
}

func TestSearch_TransportError(t *testing.T) {
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	_, err := run(t, "search", "alien")
	require.Error(t, err)
	assert.ErrorIs(t, err, omdb.ErrTransport)
	assert.Contains(t, err.Error(), "Network error")
}

func TestDetails_PrintsFields(t *testing.T) {
	setup(t, catalogHandler(t))

	out, err := run(t, "details", "tt0078748")
	require.NoError(t, err)
	assert.Contains(t, out, "Alien (1979)")
	assert.Contains(t, out, "Ridley Scott")
	assert.Contains(t, out, "950,000")
}

func TestWatchlist_AddListRemove(t *testing.T) {
	e := setup(t, catalogHandler(t))

	out, err := run(t, "watchlist", "add", "tt0078748")
	require.NoError(t, err)
	assert.Equal(t, "Added Alien (1979).\n", out)

	out, err = run(t, "watchlist", "add", "tt0078748")
	require.NoError(t, err)
	assert.Contains(t, out, "already in your watchlist")

	exists, err := afero.Exists(e.fs, "/data/watchlist.toml")
	require.NoError(t, err)
	assert.True(t, exists)

	out, err = run(t, "watchlist", "--json")
	require.NoError(t, err)
	var items []omdb.MovieSummary
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "tt0078748", items[0].ID)

	out, err = run(t, "watchlist", "remove", "tt0078748")
	require.NoError(t, err)
	assert.Equal(t, "Removed tt0078748.\n", out)

	_, err = run(t, "watchlist", "remove", "tt0078748")
	require.Error(t, err)

	jsonOutput = false
	out, err = run(t, "watchlist")
	require.NoError(t, err)
	assert.Equal(t, "Your watchlist is empty.\n", out)
}

func TestHistory_Clear(t *testing.T) {
	setup(t, catalogHandler(t))

	_, err := run(t, "search", "alien")
	require.NoError(t, err)

	out, err := run(t, "history", "--clear")
	require.NoError(t, err)
	assert.Equal(t, "Search history cleared.\n", out)

	historyClear = false
	out, err = run(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No recent searches.\n", out)
}

func TestLogs_FormatsTail(t *testing.T) {
	e := setup(t, catalogHandler(t))
	lines := `{"level":"INFO","msg":"first"}` + "\n" +
		`{"level":"WARN","msg":"second","error":"boom"}` + "\n"
	require.NoError(t, afero.WriteFile(e.fs, "/data/filmfinder.log", []byte(lines), 0o644))

	out, err := run(t, "logs", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "WARN  second error=boom\n", out)
}

func TestLogs_MissingFile(t *testing.T) {
	setup(t, catalogHandler(t))

	out, err := run(t, "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "No log entries")
}
