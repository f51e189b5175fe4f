package main

import (
	"fmt"
)

// cmdStart begins a session for a project directory.
func cmdStart(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("project directory required (e.g., ego start ~/code/myproject)")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := a.tracker.Begin(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Session started in directory: %s\n", sess.ProjectPath)
	fmt.Printf("Initial line count: %d\n", sess.InitialLineCount)
	fmt.Printf("Initial character count: %d\n", sess.InitialCharCount)
	return nil
}
