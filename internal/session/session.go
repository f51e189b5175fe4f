package session

import (
	"time"

	"github.com/felixgeelhaar/ego/internal/counter"
	"github.com/google/uuid"
)

// Session is the record persisted between `ego start` and `ego end`. At most
// one exists at a time; it is created only by Begin and destroyed only by
// End or Cancel.
type Session struct {
	ID          string    `json:"id"`
	ProjectPath string    `json:"project_path"`
	StartTime   time.Time `json:"start_time"`

	InitialLineCount int64 `json:"initial_line_count"`
	InitialCharCount int64 `json:"initial_char_count"`

	// InitialFiles maps relative path to content hash, taken at start, so
	// End can report created/modified/deleted files.
	InitialFiles map[string]string `json:"initial_files,omitempty"`
}

// NewSession captures the start-of-session state for a project directory.
func NewSession(projectPath string, totals counter.Totals, files map[string]string) *Session {
	return &Session{
		ID:               uuid.New().String(),
		ProjectPath:      projectPath,
		StartTime:        time.Now(),
		InitialLineCount: totals.Lines,
		InitialCharCount: totals.Chars,
		InitialFiles:     files,
	}
}

// Elapsed returns the time since the session started, clamped to zero.
func (s *Session) Elapsed() time.Duration {
	d := time.Since(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// Summary is the transient result of ending a session. It is rendered once
// and archived to history; it is never the persisted record.
type Summary struct {
	SessionID   string    `json:"session_id"`
	ProjectPath string    `json:"project_path"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`

	Duration time.Duration `json:"duration"`

	InitialLineCount int64 `json:"initial_line_count"`
	FinalLineCount   int64 `json:"final_line_count"`
	LinesDelta       int64 `json:"lines_delta"`

	InitialCharCount int64 `json:"initial_char_count"`
	FinalCharCount   int64 `json:"final_char_count"`
	CharsDelta       int64 `json:"chars_delta"`

	FilesCreated  []string `json:"files_created,omitempty"`
	FilesModified []string `json:"files_modified,omitempty"`
	FilesDeleted  []string `json:"files_deleted,omitempty"`
}

// newSummary computes the summary for a session ending now with the given
// end-of-session measurements.
func newSummary(s *Session, endTime time.Time, totals counter.Totals, files map[string]string) *Summary {
	duration := endTime.Sub(s.StartTime)
	if duration < 0 {
		duration = 0
	}

	created, modified, deleted := counter.DiffSnapshots(s.InitialFiles, files)

	return &Summary{
		SessionID:        s.ID,
		ProjectPath:      s.ProjectPath,
		StartTime:        s.StartTime,
		EndTime:          endTime,
		Duration:         duration,
		InitialLineCount: s.InitialLineCount,
		FinalLineCount:   totals.Lines,
		LinesDelta:       totals.Lines - s.InitialLineCount,
		InitialCharCount: s.InitialCharCount,
		FinalCharCount:   totals.Chars,
		CharsDelta:       totals.Chars - s.InitialCharCount,
		FilesCreated:     created,
		FilesModified:    modified,
		FilesDeleted:     deleted,
	}
}
