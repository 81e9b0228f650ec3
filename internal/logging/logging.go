// Package logging builds the charmbracelet/log loggers used across amenu.
//
// The picker owns the terminal while it runs, so diagnostics go to a log
// file instead of stderr. When the file cannot be opened the logger
// discards output and the caller decides whether to report the error.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by amenu loggers.
const Prefix = "amenu"

// New returns a text logger writing to w at level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	})
}

// ParseLevel maps a config level name to a log level. Empty means info.
func ParseLevel(name string) (log.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open appends to the log file at path, creating parent directories as
// needed. An empty path disables logging. On failure it still returns a
// usable logger that discards output.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return New(io.Discard, level), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return New(io.Discard, level), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return New(io.Discard, level), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}
