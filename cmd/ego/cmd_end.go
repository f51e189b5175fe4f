package main

import (
	"os"

	"github.com/felixgeelhaar/ego/internal/report"
)

// cmdEnd finishes the active session and prints the summary.
func cmdEnd() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := a.tracker.End()
	if err != nil {
		return err
	}

	report.Render(os.Stdout, summary)
	return nil
}
