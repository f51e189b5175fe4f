package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "start":
		err = cmdStart(os.Args[2:])
	case "end":
		err = cmdEnd()
	case "status":
		err = cmdStatus()
	case "cancel":
		err = cmdCancel()
	case "history":
		err = cmdHistory(os.Args[2:])
	case "stats":
		err = cmdStats()
	case "config":
		err = cmdConfig()
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("ego %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Ego - Coding Session Tracker

Usage:
  ego <command> [arguments]

Session Commands:
  start <dir>     Start a session for a project directory
  end             End the active session and print the summary
  status          Show the active session, if any
  cancel          Discard the active session without a summary

History Commands:
  history [n]     Show the n most recent sessions (default 10)
  stats           Show aggregate totals across all sessions

Other:
  config          Show current configuration
  help            Show this help message
  version         Show version information

Examples:
  ego start ~/code/myproject      # Start tracking
  ego end                         # Stop and see what you wrote
  ego history 5                   # Last five sessions`)
}
