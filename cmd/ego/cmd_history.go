package main

import (
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/ego/internal/report"
)

// cmdHistory lists recently ended sessions.
func cmdHistory(args []string) error {
	limit := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid count: %s", args[0])
		}
		limit = n
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.history == nil {
		return fmt.Errorf("history is disabled in config")
	}

	summaries, err := a.history.Recent(limit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Println("Recent Sessions")
	fmt.Println("===============")
	for _, s := range summaries {
		fmt.Printf("%s  %s  lines %s  chars %s  %s\n",
			s.EndTime.Format("2006-01-02 15:04"),
			report.FormatDuration(s.Duration),
			report.Signed(s.LinesDelta),
			report.Signed(s.CharsDelta),
			s.ProjectPath)
	}
	return nil
}

// cmdStats shows aggregate totals across all archived sessions.
func cmdStats() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.history == nil {
		return fmt.Errorf("history is disabled in config")
	}

	totals, err := a.history.Totals()
	if err != nil {
		return fmt.Errorf("load totals: %w", err)
	}

	fmt.Println("Session Statistics")
	fmt.Println("==================")
	fmt.Printf("Total sessions:   %d\n", totals.Sessions)
	fmt.Printf("Total time:       %s\n", report.FormatDuration(totals.TotalDuration))
	fmt.Printf("Net lines:        %s\n", report.Signed(totals.LinesDelta))
	fmt.Printf("Net characters:   %s\n", report.Signed(totals.CharsDelta))
	return nil
}
