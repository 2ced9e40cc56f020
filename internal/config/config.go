package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds FilmFinder's runtime settings.
type Config struct {
	APIBase          string
	APIKey           string
	DataDir          string
	LogFile          string
	LogLevel         string
	Timeout          time.Duration
	PersistWatchlist bool
	DiscardStale     bool
}

// EnvPrefix prefixes every environment override, e.g. FILMFINDER_API_KEY.
const EnvPrefix = "FILMFINDER"

const (
	defaultConfigPath = "~/.config/filmfinder/config.toml"
	defaultDataDir    = "~/.local/share/filmfinder"
	defaultAPIBase    = "https://www.omdbapi.com/"
	defaultLogLevel   = "info"
	defaultTimeout    = 10 * time.Second
	logFileName       = "filmfinder.log"
)

type fileConfig struct {
	APIBase          string `toml:"api_base"`
	APIKey           string `toml:"api_key"`
	DataDir          string `toml:"data_dir"`
	LogFile          string `toml:"log_file"`
	LogLevel         string `toml:"log_level"`
	TimeoutSeconds   int    `toml:"timeout_seconds"`
	PersistWatchlist *bool  `toml:"persist_watchlist"`
	DiscardStale     *bool  `toml:"discard_stale"`
}

type envConfig struct {
	APIBase          string `envconfig:"API_BASE"`
	APIKey           string `envconfig:"API_KEY"`
	DataDir          string `envconfig:"DATA_DIR"`
	LogFile          string `envconfig:"LOG_FILE"`
	LogLevel         string `envconfig:"LOG_LEVEL"`
	TimeoutSeconds   *int   `envconfig:"TIMEOUT_SECONDS"`
	PersistWatchlist *bool  `envconfig:"PERSIST_WATCHLIST"`
	DiscardStale     *bool  `envconfig:"DISCARD_STALE"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		APIBase:          defaultAPIBase,
		DataDir:          dataDir,
		LogFile:          filepath.Join(dataDir, logFileName),
		LogLevel:         defaultLogLevel,
		Timeout:          defaultTimeout,
		PersistWatchlist: true,
	}
}

// Load parses the TOML config at path (or the default location), then applies
// a .env file from the working directory and FILMFINDER_* environment
// variables on top. A missing file yields defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	// load default .env file, ignore the error
	_ = godotenv.Load()

	var env envConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	raw.merge(env)

	return raw.resolve()
}

func (f *fileConfig) merge(env envConfig) {
	override := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	override(&f.APIBase, env.APIBase)
	override(&f.APIKey, env.APIKey)
	override(&f.DataDir, env.DataDir)
	override(&f.LogFile, env.LogFile)
	override(&f.LogLevel, env.LogLevel)
	if env.TimeoutSeconds != nil {
		f.TimeoutSeconds = *env.TimeoutSeconds
	}
	if env.PersistWatchlist != nil {
		f.PersistWatchlist = env.PersistWatchlist
	}
	if env.DiscardStale != nil {
		f.DiscardStale = env.DiscardStale
	}
}

func (f fileConfig) resolve() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(f.APIBase); v != "" {
		cfg.APIBase = v
	}
	cfg.APIKey = strings.TrimSpace(f.APIKey)

	if v := strings.TrimSpace(f.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
	}
	cfg.LogFile = filepath.Join(cfg.DataDir, logFileName)
	if v := strings.TrimSpace(f.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if v := strings.ToLower(strings.TrimSpace(f.LogLevel)); v != "" {
		if _, err := ParseLevel(v); err != nil {
			return Config{}, err
		}
		cfg.LogLevel = v
	}
	if f.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(f.TimeoutSeconds) * time.Second
	}
	if f.PersistWatchlist != nil {
		cfg.PersistWatchlist = *f.PersistWatchlist
	}
	if f.DiscardStale != nil {
		cfg.DiscardStale = *f.DiscardStale
	}
	return cfg, nil
}

// Validate reports settings that make the catalog unreachable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api key not configured: set api_key in %s or %s_API_KEY", defaultConfigPath, EnvPrefix)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func ParseLevel(v string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: want debug, info, warn or error", v)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
