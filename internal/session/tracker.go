package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/ego/internal/counter"
	"github.com/felixgeelhaar/ego/internal/storage/local"
)

var (
	ErrSessionActive          = errors.New("a session is already active")
	ErrNoActiveSession        = errors.New("no active session")
	ErrInvalidPath            = errors.New("project path is not an existing directory")
	ErrProjectPathUnavailable = errors.New("project path is unavailable")
)

// Archive records completed session summaries. The SQLite history store
// implements this; a nil archive means history is disabled.
type Archive interface {
	Record(summary *Summary) error
}

// Tracker owns the session lifecycle: NoSession -> Begin -> Active ->
// End/Cancel -> NoSession. No other transitions exist; violations are
// errors, never silently ignored.
type Tracker struct {
	store   *local.Store
	counter *counter.Counter
	archive Archive
}

// NewTracker creates a tracker over the given record store and counter.
func NewTracker(store *local.Store, c *counter.Counter) *Tracker {
	return &Tracker{store: store, counter: c}
}

// SetArchive enables history recording for completed sessions.
func (t *Tracker) SetArchive(a Archive) {
	t.archive = a
}

// Begin starts a session rooted at path. Nothing is persisted unless the
// initial scan fully succeeds.
func (t *Tracker) Begin(path string) (*Session, error) {
	if t.store.Exists() {
		return nil, ErrSessionActive
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidPath)
	}

	totals, err := t.counter.Count(abs)
	if err != nil {
		return nil, fmt.Errorf("count lines: %w", err)
	}
	files, err := t.counter.Snapshot(abs)
	if err != nil {
		return nil, fmt.Errorf("snapshot files: %w", err)
	}

	sess := NewSession(abs, totals, files)
	if err := t.store.Save(sess); err != nil {
		return nil, fmt.Errorf("save session record: %w", err)
	}

	slog.Info("session started",
		"id", sess.ID,
		"path", abs,
		"lines", totals.Lines,
		"files", totals.Files)
	return sess, nil
}

// End finishes the active session and returns its summary. When the stored
// project path is gone or unreadable the record is left intact so End can be
// retried once the path is restored (or discarded with Cancel).
func (t *Tracker) End() (*Summary, error) {
	var sess Session
	if err := t.store.Load(&sess); err != nil {
		if errors.Is(err, local.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("load session record: %w", err)
	}

	info, err := os.Stat(sess.ProjectPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", sess.ProjectPath, ErrProjectPathUnavailable)
	}

	totals, err := t.counter.Count(sess.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sess.ProjectPath, ErrProjectPathUnavailable)
	}
	files, err := t.counter.Snapshot(sess.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sess.ProjectPath, ErrProjectPathUnavailable)
	}

	summary := newSummary(&sess, time.Now(), totals, files)

	// History is best effort; a failed archive never loses the summary.
	if t.archive != nil {
		if err := t.archive.Record(summary); err != nil {
			slog.Warn("archive session", "id", sess.ID, "error", err)
		}
	}

	// Delete only after the summary is fully computed, so an interrupted End
	// leaves the record in place.
	if err := t.store.Delete(); err != nil && !errors.Is(err, local.ErrNotFound) {
		return nil, fmt.Errorf("clear session record: %w", err)
	}

	slog.Info("session ended",
		"id", sess.ID,
		"duration", summary.Duration,
		"lines_delta", summary.LinesDelta)
	return summary, nil
}

// Active returns the current session record.
func (t *Tracker) Active() (*Session, error) {
	var sess Session
	if err := t.store.Load(&sess); err != nil {
		if errors.Is(err, local.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("load session record: %w", err)
	}
	return &sess, nil
}

// Cancel discards the active session without producing a summary.
func (t *Tracker) Cancel() error {
	if err := t.store.Delete(); err != nil {
		if errors.Is(err, local.ErrNotFound) {
			return ErrNoActiveSession
		}
		return fmt.Errorf("clear session record: %w", err)
	}
	slog.Info("session cancelled")
	return nil
}
