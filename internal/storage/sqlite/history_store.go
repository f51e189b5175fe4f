package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felixgeelhaar/ego/internal/session"
)

// HistoryStore archives completed session summaries, backed by SQLite.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new SQLite-backed history store.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Record stores a completed session summary.
func (s *HistoryStore) Record(summary *session.Summary) error {
	created, err := json.Marshal(summary.FilesCreated)
	if err != nil {
		return fmt.Errorf("marshal files_created: %w", err)
	}
	modified, err := json.Marshal(summary.FilesModified)
	if err != nil {
		return fmt.Errorf("marshal files_modified: %w", err)
	}
	deleted, err := json.Marshal(summary.FilesDeleted)
	if err != nil {
		return fmt.Errorf("marshal files_deleted: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO sessions (id, project_path, started_at, ended_at, duration_secs,
			initial_lines, final_lines, lines_delta,
			initial_chars, final_chars, chars_delta,
			files_created, files_modified, files_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.SessionID, summary.ProjectPath,
		summary.StartTime, summary.EndTime, int64(summary.Duration.Seconds()),
		summary.InitialLineCount, summary.FinalLineCount, summary.LinesDelta,
		summary.InitialCharCount, summary.FinalCharCount, summary.CharsDelta,
		string(created), string(modified), string(deleted),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Recent returns the most recently ended sessions, newest first.
func (s *HistoryStore) Recent(limit int) ([]*session.Summary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT id, project_path, started_at, ended_at, duration_secs,
			initial_lines, final_lines, lines_delta,
			initial_chars, final_chars, chars_delta,
			files_created, files_modified, files_deleted
		FROM sessions ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var summaries []*session.Summary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Totals holds aggregate statistics over all archived sessions.
type Totals struct {
	Sessions      int           `json:"sessions"`
	TotalDuration time.Duration `json:"total_duration"`
	LinesDelta    int64         `json:"lines_delta"`
	CharsDelta    int64         `json:"chars_delta"`
}

// Totals aggregates across the whole archive.
func (s *HistoryStore) Totals() (Totals, error) {
	row := s.db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(duration_secs), 0),
			COALESCE(SUM(lines_delta), 0),
			COALESCE(SUM(chars_delta), 0)
		FROM sessions`)

	var t Totals
	var durationSecs int64
	if err := row.Scan(&t.Sessions, &durationSecs, &t.LinesDelta, &t.CharsDelta); err != nil {
		return Totals{}, fmt.Errorf("scan totals: %w", err)
	}
	t.TotalDuration = time.Duration(durationSecs) * time.Second
	return t, nil
}

func scanSummary(rows *sql.Rows) (*session.Summary, error) {
	var summary session.Summary
	var durationSecs int64
	var created, modified, deleted string

	if err := rows.Scan(
		&summary.SessionID, &summary.ProjectPath,
		&summary.StartTime, &summary.EndTime, &durationSecs,
		&summary.InitialLineCount, &summary.FinalLineCount, &summary.LinesDelta,
		&summary.InitialCharCount, &summary.FinalCharCount, &summary.CharsDelta,
		&created, &modified, &deleted,
	); err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	summary.Duration = time.Duration(durationSecs) * time.Second
	if err := json.Unmarshal([]byte(created), &summary.FilesCreated); err != nil {
		return nil, fmt.Errorf("unmarshal files_created: %w", err)
	}
	if err := json.Unmarshal([]byte(modified), &summary.FilesModified); err != nil {
		return nil, fmt.Errorf("unmarshal files_modified: %w", err)
	}
	if err := json.Unmarshal([]byte(deleted), &summary.FilesDeleted); err != nil {
		return nil, fmt.Errorf("unmarshal files_deleted: %w", err)
	}
	return &summary, nil
}
