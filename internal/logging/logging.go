// Package logging builds the charmbracelet loggers used across the program.
// The terminal belongs to the game while it runs, so interactive commands
// log to a file; the SSH server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options controls where and how much is logged.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	File   string // log file path; empty means Writer
	Prefix string
	Writer io.Writer // used when File is empty; nil discards
}

// New creates a logger. The returned closer releases the log file and
// must be called on shutdown; it is a no-op when no file was opened.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		f, err := openFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	case opts.Writer != nil:
		w = opts.Writer
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Used by tests and as
// the default when a component is built without a logger.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func openFile(path string) (*os.File, error) {
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
