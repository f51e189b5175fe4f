// Package report renders a finished session summary for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/felixgeelhaar/ego/internal/session"
)

// Render writes the end-of-session report.
func Render(w io.Writer, s *session.Summary) {
	fmt.Fprintln(w, "Session Summary")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "Project:        %s\n", s.ProjectPath)
	fmt.Fprintf(w, "Duration:       %s\n", FormatDuration(s.Duration))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Lines:          %d -> %d (%s)\n", s.InitialLineCount, s.FinalLineCount, Signed(s.LinesDelta))
	fmt.Fprintf(w, "Characters:     %d -> %d (%s)\n", s.InitialCharCount, s.FinalCharCount, Signed(s.CharsDelta))

	if hours := s.Duration.Hours(); hours > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Lines/hour:     %.1f\n", float64(s.LinesDelta)/hours)
		fmt.Fprintf(w, "Chars/hour:     %.1f\n", float64(s.CharsDelta)/hours)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "File Changes")
	fmt.Fprintln(w, "------------")
	fmt.Fprintf(w, "Created:        %d\n", len(s.FilesCreated))
	fmt.Fprintf(w, "Modified:       %d\n", len(s.FilesModified))
	fmt.Fprintf(w, "Deleted:        %d\n", len(s.FilesDeleted))
}

// FormatDuration renders a duration as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// Signed renders a delta with an explicit sign, e.g. "+5" or "-3".
func Signed(n int64) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
