package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/filmfinder/internal/config"
	"github.com/five82/filmfinder/internal/omdb"
	"github.com/five82/filmfinder/internal/state"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.APIKey = "test-key"
	cfg.DataDir = "/data"
	return cfg
}

func testOptions(fs afero.Fs) Options {
	return Options{Fs: fs, Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
}

func TestNewWithConfig_WiresComponents(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, err := NewWithConfig(testConfig(), testOptions(fs))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.NotNil(t, a.Catalog)
	assert.Equal(t, "/data", a.Store.Dir())
	assert.Empty(t, a.History.Terms())
	assert.Zero(t, a.Watchlist.Len())
	assert.Equal(t, state.LastResolvedWins, a.Searches.Policy())
	assert.Equal(t, "Nightfox", a.Prefs.Theme)

	opts := a.UIOptions(t.Context())
	assert.Same(t, a.Watchlist, opts.Watchlist)
	assert.Same(t, a.History, opts.History)
	assert.Equal(t, "Nightfox", opts.ThemeName)
}

func TestNewWithConfig_WatchlistSurvivesRestart(t *testing.T) {
	fs := afero.NewMemMapFs()
	movie := omdb.MovieSummary{ID: "tt0078748", Title: "Alien", Year: "1979"}

	first, err := NewWithConfig(testConfig(), testOptions(fs))
	require.NoError(t, err)
	first.Watchlist.Add(movie)
	require.NoError(t, first.History.Record("alien"))
	require.NoError(t, first.Close())

	second, err := NewWithConfig(testConfig(), testOptions(fs))
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	assert.Equal(t, []omdb.MovieSummary{movie}, second.Watchlist.Items())
	assert.Equal(t, []string{"alien"}, second.History.Terms())
}

func TestNewWithConfig_PersistenceDisabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := testConfig()
	cfg.PersistWatchlist = false
	cfg.DiscardStale = true

	a, err := NewWithConfig(cfg, testOptions(fs))
	require.NoError(t, err)
	a.Watchlist.Add(omdb.MovieSummary{ID: "tt1"})
	require.NoError(t, a.Close())

	exists, err := afero.Exists(fs, "/data/watchlist.toml")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, state.DiscardStale, a.Searches.Policy())
}

func TestNewWithConfig_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""

	_, err := NewWithConfig(cfg, testOptions(afero.NewMemMapFs()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key not configured")
}

func TestNew_LoadsConfigFileAndLogs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "api_key = \"k\"\ndata_dir = \"" + filepath.ToSlash(filepath.Join(dir, "data")) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	a, err := New(Options{ConfigPath: path, LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", a.Config.LogLevel)
	require.NoError(t, a.Close())

	data, err := os.ReadFile(filepath.Join(dir, "data", "filmfinder.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "app initialized")
}

func TestNew_RejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_key = \"k\"\n"), 0o600))

	_, err := New(Options{ConfigPath: path, LogLevel: "chatty"})
	require.Error(t, err)
}
