package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/five82/amenu/internal/clipboard"
	"github.com/five82/amenu/internal/config"
	"github.com/five82/amenu/internal/entries"
	"github.com/five82/amenu/internal/logging"
	"github.com/five82/amenu/internal/picker"
	"github.com/five82/amenu/internal/prefs"
	"github.com/five82/amenu/internal/ui"
)

// Options configure the amenu application.
type Options struct {
	EntriesPath string    // positional argument; empty uses entries_file from config
	ConfigPath  string    // empty uses ~/.config/amenu/config.toml
	PrefsPath   string    // empty uses ~/.config/amenu/prefs.toml
	Debug       bool      // force debug logging
	Stderr      io.Writer // operator messages and OSC 52 output; nil uses os.Stderr
}

var runUI = func(ctx context.Context, opts ui.Options) (picker.Termination, error) {
	return ui.Run(ctx, opts)
}

// Run loads the entries, shows the picker and blocks until it terminates.
func Run(ctx context.Context, opts Options) error {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Debug {
		level = log.DebugLevel
	}

	logger, closer, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "amenu: %v (logging disabled)\n", err)
	}
	defer closer.Close()
	log.SetDefault(logger)

	entriesPath := cfg.EntriesPath(opts.EntriesPath)
	store, err := entries.Load(entriesPath)
	if err != nil {
		logger.Warn("entries unavailable, starting empty", "path", entriesPath, "err", err)
	} else {
		logger.Info("loaded entries", "path", entriesPath, "count", store.Len())
	}

	sink, err := openSink(cfg.Clipboard, stderr, logger)
	if err != nil {
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("preferences unreadable, using defaults", "err", err)
	}

	committer := picker.NewCommitter(sink,
		picker.WithDelay(cfg.CommitDelay),
		picker.WithLogger(logger),
	)

	term, err := runUI(ctx, ui.Options{
		Controller: picker.NewController(store, committer),
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		ShowHelp:   cfg.ShowHelp,
		AltScreen:  cfg.AltScreen,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	logger.Info("picker finished", "reason", term.Reason, "name", term.Name, "copied", term.Copied)
	if term.Err != nil {
		fmt.Fprintf(stderr, "amenu: copy to clipboard: %v\n", term.Err)
	}
	return nil
}

// openSink resolves the clipboard backend. A missing system clipboard is
// not fatal: the picker still runs and commits copy nothing.
func openSink(backend string, w io.Writer, logger *log.Logger) (picker.ClipboardSink, error) {
	sink, err := clipboard.Open(backend, w)
	if err != nil {
		if errors.Is(err, clipboard.ErrUnavailable) {
			logger.Warn("clipboard unavailable, commits will not copy", "backend", backend)
			return nil, nil
		}
		return nil, fmt.Errorf("open clipboard: %w", err)
	}
	logger.Debug("clipboard ready", "backend", backend, "sink", fmt.Sprintf("%T", sink))
	return sink, nil
}
