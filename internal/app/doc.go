// Package app is FilmFinder's composition root.
//
// New loads configuration and builds every long-lived component exactly
// once:
//
//	config.Load()            TOML file, .env, FILMFINDER_* overrides
//	logging.Setup()          JSON to a rotating file, optional stderr text
//	omdb.NewClient()         catalog client with the configured timeout
//	kv.NewFileStore()        slots under data_dir
//	history.New()            recent searches, primed from its slot
//	watchlist.New/Persist()  liked movies, restored and saved when enabled
//	state.NewStore()         search ordering policy from discard_stale
//	prefs.Load()             saved theme
//
// The resulting App is handed to the terminal UI (Run) or to CLI commands,
// which use its fields directly. There are no package-level singletons.
//
// Fatal errors are returned from New: an unreadable or invalid config, a
// missing API key, or a log file that cannot be created. Storage problems
// after startup are logged and never stop the application.
//
// Close stops watchlist persistence and closes the log file.
package app
