// Package main is the entry point for keyline, an interactive line reader
// with readline-style history search.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keyline/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	session, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Shutdown restores the terminal, so it runs on every exit path.
	defer func() {
		if err := session.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-signals
		_ = session.Shutdown()
		os.Exit(1)
	}()

	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Backend, "backend", app.BackendAuto, "Terminal backend (auto, tcell, stream)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.HistoryFile, "history", "", "History file")
	flag.StringVar(&opts.Prompt, "prompt", app.DefaultPrompt, "Line prompt")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keyline - interactive line reader with history search\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyline                          Read lines with the default config\n")
		fmt.Fprintf(os.Stderr, "  keyline -history ~/.kl_history   Persist history to a file\n")
		fmt.Fprintf(os.Stderr, "  printf 'ls\\r' | keyline          Decode keys from a pipe\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keyline %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	switch opts.Backend {
	case app.BackendAuto, app.BackendTcell, app.BackendStream:
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid backend %q (must be auto, tcell, or stream)\n", opts.Backend)
		os.Exit(1)
	}

	return opts
}
