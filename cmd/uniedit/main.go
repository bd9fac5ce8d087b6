// Package main is the entry point for the uniedit code-point editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaprikaX33/Uniedit/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, exit, ok := parseFlags(args, stdout, stderr)
	if !ok {
		return exit
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	if err := application.Run(context.Background()); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// parseFlags parses the command line. When ok is false the program should
// exit with the returned code without starting a session.
func parseFlags(args []string, stdout, stderr io.Writer) (opts app.Options, exit int, ok bool) {
	var showVersion bool
	var showHelp bool

	flags := flag.NewFlagSet("uniedit", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml, .yml)")
	flags.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.ReadOnly, "readonly", false, "Reject commands that change the buffer")
	flags.BoolVar(&opts.ReadOnly, "R", false, "Reject commands that change the buffer (shorthand)")
	flags.BoolVar(&showVersion, "version", false, "Show version information")
	flags.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flags.BoolVar(&showHelp, "help", false, "Show help message")
	flags.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "uniedit - line-oriented Unicode code-point editor\n\n")
		fmt.Fprintf(stderr, "Usage: uniedit [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  uniedit                     Start with an empty buffer\n")
		fmt.Fprintf(stderr, "  uniedit notes.txt           Load a file into the buffer\n")
		fmt.Fprintf(stderr, "  uniedit -R notes.txt        Inspect a file read-only\n")
		fmt.Fprintf(stderr, "\nType .h at the prompt for the command reference.\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, false
		}
		return opts, 2, false
	}

	if showHelp {
		flags.Usage()
		return opts, 0, false
	}

	if showVersion {
		fmt.Fprintf(stdout, "uniedit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, 0, false
	}

	// Validate log level
	if opts.LogLevel != "" {
		if _, err := app.ParseLogLevel(opts.LogLevel); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return opts, 1, false
		}
	}

	switch flags.NArg() {
	case 0:
	case 1:
		opts.File = flags.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: at most one file may be given, got %d\n", flags.NArg())
		return opts, 2, false
	}

	opts.Version = version
	return opts, 0, true
}
