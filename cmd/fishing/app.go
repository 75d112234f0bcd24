package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/scoring"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

// app holds what every command needs: configuration, a logger and the
// score bridge.
type app struct {
	cfg     config.FishingConfig
	logger  *log.Logger
	store   storage.Store
	bridge  *scoring.Bridge
	logFile io.Closer
}

// loadApp reads .env and the config, sets up logging and opens storage.
// With requireStore unset a storage failure is logged and the app runs
// without persistence.
func loadApp(requireStore bool) (*app, error) {
	// A missing .env is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: cannot read .env: %v\n", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.Storage.Dir = flagDataDir
	}
	if flagDriver != "" {
		cfg.Storage.Driver = flagDriver
	}
	cfg.Normalize()

	a := &app{cfg: cfg}
	a.logger, a.logFile, err = newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("config loaded", "driver", cfg.Storage.Driver, "dir", cfg.Storage.Dir)

	store, err := storage.Open(cfg.Storage, cfg.Scores.MaxHighScores)
	if err != nil {
		if requireStore {
			a.Close()
			return nil, err
		}
		a.logger.Warn("could not open score storage", "error", err)
		// Continue without storage
		store = nil
	}
	a.store = store
	a.bridge = scoring.New(store, cfg.Scores.MaxHighScores, a.logger)
	return a, nil
}

// newLogger writes to stderr, or to cfg.File when it is set so that the
// alt-screen game is not disturbed.
func newLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = log.WarnLevel
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fishing",
		Level:           level,
	})
	return logger, closer, nil
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("cannot close score storage", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
