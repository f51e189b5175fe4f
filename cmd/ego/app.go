package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/ego/internal/config"
	"github.com/felixgeelhaar/ego/internal/counter"
	"github.com/felixgeelhaar/ego/internal/session"
	"github.com/felixgeelhaar/ego/internal/storage/local"
	"github.com/felixgeelhaar/ego/internal/storage/sqlite"
)

const (
	recordFileName  = "session.json"
	historyFileName = "history.db"
)

// app bundles everything a command needs. Close releases the history
// database, if open.
type app struct {
	cfg     *config.Config
	tracker *session.Tracker
	history *sqlite.HistoryStore
	db      *sqlite.DB
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	setupLogging(cfg.LogLevel)

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := local.NewStore(filepath.Join(dataDir, recordFileName))
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	c := counter.New().WithExtensions(cfg.Counter.ExtraExtensions)
	tracker := session.NewTracker(store, c)

	a := &app{cfg: cfg, tracker: tracker}
	if cfg.History.Enabled {
		db, err := sqlite.Open(filepath.Join(dataDir, historyFileName))
		if err != nil {
			return nil, fmt.Errorf("open history db: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate history db: %w", err)
		}
		a.db = db
		a.history = sqlite.NewHistoryStore(db)
		tracker.SetArchive(a.history)
	}
	return a, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func setupLogging(level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
