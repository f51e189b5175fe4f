package main

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/ego/internal/report"
	"github.com/felixgeelhaar/ego/internal/session"
)

// cmdStatus shows the active session, if any.
func cmdStatus() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := a.tracker.Active()
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			fmt.Println("No active session.")
			return nil
		}
		return err
	}

	fmt.Printf("Active session in: %s\n", sess.ProjectPath)
	fmt.Printf("Started:           %s\n", sess.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("Elapsed:           %s\n", report.FormatDuration(sess.Elapsed()))
	fmt.Printf("Initial lines:     %d\n", sess.InitialLineCount)
	return nil
}

// cmdCancel discards the active session.
func cmdCancel() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.tracker.Cancel(); err != nil {
		return err
	}
	fmt.Println("Session cancelled.")
	return nil
}
