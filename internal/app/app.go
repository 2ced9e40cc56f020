package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/afero"

	"github.com/five82/filmfinder/internal/config"
	"github.com/five82/filmfinder/internal/history"
	"github.com/five82/filmfinder/internal/kv"
	"github.com/five82/filmfinder/internal/logging"
	"github.com/five82/filmfinder/internal/omdb"
	"github.com/five82/filmfinder/internal/prefs"
	"github.com/five82/filmfinder/internal/state"
	"github.com/five82/filmfinder/internal/ui"
	"github.com/five82/filmfinder/internal/watchlist"
)

// Version is reported in the User-Agent and by the CLI.
var Version = "dev"

// Options configure the FilmFinder application.
type Options struct {
	ConfigPath string
	LogLevel   string // overrides the configured level when set
	// LogStderr mirrors log records to stderr as text. The TUI leaves it off.
	LogStderr bool

	// Logger replaces file logging entirely (tests).
	Logger *slog.Logger
	// Fs holds the data directory; nil uses the OS filesystem.
	Fs         afero.Fs
	HTTPClient *http.Client
}

// App holds every long-lived component. Build it once with New and pass the
// pieces to the front end; nothing here is global.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	Fs        afero.Fs
	Catalog   *omdb.Client
	Store     *kv.FileStore
	History   *history.History
	Watchlist *watchlist.Store
	Searches  *state.Store
	Prefs     prefs.Prefs

	closers []func() error
}

// New loads configuration and wires the components together.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		if _, err := config.ParseLevel(opts.LogLevel); err != nil {
			return nil, err
		}
		cfg.LogLevel = opts.LogLevel
	}
	return NewWithConfig(cfg, opts)
}

// NewWithConfig wires the components from an already loaded configuration.
func NewWithConfig(cfg config.Config, opts Options) (*App, error) {
	a := &App{Config: cfg, Fs: opts.Fs}
	if a.Fs == nil {
		a.Fs = afero.NewOsFs()
	}

	a.Logger = opts.Logger
	if a.Logger == nil {
		logger, closeLog, err := logging.Setup(logging.Options{
			File:   cfg.LogFile,
			Level:  cfg.SlogLevel(),
			Stderr: opts.LogStderr,
		})
		if err != nil {
			return nil, fmt.Errorf("setup logging: %w", err)
		}
		a.Logger = logger
		a.closers = append(a.closers, closeLog)
	}

	catalog, err := omdb.NewClient(omdb.Options{
		BaseURL:    cfg.APIBase,
		APIKey:     cfg.APIKey,
		Timeout:    cfg.Timeout,
		UserAgent:  "filmfinder/" + Version,
		HTTPClient: opts.HTTPClient,
		Logger:     a.Logger,
	})
	if err != nil {
		_ = a.Close()
		if verr := cfg.Validate(); verr != nil {
			return nil, verr
		}
		return nil, fmt.Errorf("init omdb client: %w", err)
	}
	a.Catalog = catalog

	a.Store = kv.NewFileStore(a.Fs, cfg.DataDir)
	a.History = history.New(a.Store, a.Logger)
	a.Watchlist = watchlist.New()
	if cfg.PersistWatchlist {
		stop := watchlist.Persist(a.Watchlist, a.Store, a.Logger)
		a.closers = append(a.closers, func() error {
			stop()
			return nil
		})
	}

	policy := state.LastResolvedWins
	if cfg.DiscardStale {
		policy = state.DiscardStale
	}
	a.Searches = state.NewStore(policy)
	a.Prefs = prefs.Load(a.Store)

	a.Logger.Debug("app initialized",
		"data_dir", cfg.DataDir,
		"persist_watchlist", cfg.PersistWatchlist,
		"policy", policy.String())
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// UIOptions returns the options for running the terminal interface.
func (a *App) UIOptions(ctx context.Context) ui.Options {
	return ui.Options{
		Context:   ctx,
		Catalog:   a.Catalog,
		Searches:  a.Searches,
		History:   a.History,
		Watchlist: a.Watchlist,
		Prefs:     a.Store,
		ThemeName: a.Prefs.Theme,
		Logger:    a.Logger,
	}
}

// Run boots the FilmFinder TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	opts.LogStderr = false
	a, err := New(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Logger.Info("starting tui", "version", Version)
	return ui.Run(a.UIOptions(ctx))
}
