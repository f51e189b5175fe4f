package report

import (
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/ego/internal/session"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{45 * time.Second, "00:00:45"},
		{90 * time.Minute, "01:30:00"},
		{25*time.Hour + 61*time.Second, "25:01:01"},
		{-time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q; want %q", tt.d, got, tt.want)
		}
	}
}

func TestSigned(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{5, "+5"},
		{0, "+0"},
		{-3, "-3"},
	}
	for _, tt := range tests {
		if got := Signed(tt.n); got != tt.want {
			t.Errorf("Signed(%d) = %q; want %q", tt.n, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	summary := &session.Summary{
		ProjectPath:      "/home/dev/project",
		Duration:         90 * time.Minute,
		InitialLineCount: 100,
		FinalLineCount:   130,
		LinesDelta:       30,
		InitialCharCount: 2000,
		FinalCharCount:   2600,
		CharsDelta:       600,
		FilesCreated:     []string{"new.go"},
		FilesModified:    []string{"main.go", "util.go"},
	}

	var sb strings.Builder
	Render(&sb, summary)
	out := sb.String()

	for _, want := range []string{
		"/home/dev/project",
		"01:30:00",
		"100 -> 130 (+30)",
		"2000 -> 2600 (+600)",
		"Lines/hour:     20.0",
		"Created:        1",
		"Modified:       2",
		"Deleted:        0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRender_NegativeDelta(t *testing.T) {
	summary := &session.Summary{
		ProjectPath:      "/p",
		InitialLineCount: 50,
		FinalLineCount:   40,
		LinesDelta:       -10,
	}

	var sb strings.Builder
	Render(&sb, summary)
	if !strings.Contains(sb.String(), "(-10)") {
		t.Errorf("report missing signed negative delta:\n%s", sb.String())
	}
}
