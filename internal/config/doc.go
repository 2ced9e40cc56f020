// Package config loads FilmFinder's settings.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file passed to Load, or ~/.config/filmfinder/config.toml
//  3. A .env file in the working directory (never overrides real env vars)
//  4. FILMFINDER_* environment variables
//
// A missing config file is not an error. Blank strings and non-positive
// timeouts fall back to defaults; an unknown log level is rejected.
//
// # Defaults
//
//   - API base: https://www.omdbapi.com/
//   - Data dir: ~/.local/share/filmfinder (history, watchlist, prefs)
//   - Log file: <data_dir>/filmfinder.log
//   - Log level: info
//   - Timeout: 10s
//   - Watchlist persistence: on
//   - Stale result discarding: off
//
// # TOML Format
//
//	api_key = "abcd1234"
//	api_base = "https://www.omdbapi.com/"
//	data_dir = "~/.local/share/filmfinder"
//	log_file = "~/.local/share/filmfinder/filmfinder.log"
//	log_level = "debug"
//	timeout_seconds = 5
//	persist_watchlist = true
//	discard_stale = false
//
// # Environment
//
// Each key has an upper-case counterpart, e.g. FILMFINDER_API_KEY or
// FILMFINDER_TIMEOUT_SECONDS. Empty string variables are ignored.
//
// Paths beginning with ~ are expanded to the user's home directory and made
// absolute. The API key is not validated at load time; callers that need the
// catalog call Validate.
package config
