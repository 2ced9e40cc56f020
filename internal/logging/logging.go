// Package logging builds the application's slog loggers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls where log records go.
type Options struct {
	// File receives JSON records and is rotated by size.
	File  string
	Level slog.Level
	// Stderr additionally writes human readable text to os.Stderr. The TUI
	// leaves this off so records do not corrupt the screen.
	Stderr bool
}

// Setup creates the application logger. Returns the logger and a cleanup
// function that closes the log file.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	if opts.File == "" {
		return nil, nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	var stderr io.Writer
	if opts.Stderr {
		stderr = os.Stderr
	}
	return SetupWithWriters(stderr, rotator, opts.Level), rotator.Close, nil
}

// SetupWithWriters creates a logger with custom writers (for testing). file
// receives JSON; a non-nil stderr also receives text.
func SetupWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	if stderr == nil {
		return slog.New(fileHandler)
	}
	stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler))
}
