// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// staffdesk is a terminal UI for managing employee records: creating,
// listing, editing, and deleting employees, each associated with a
// department.
//
// Two modes of operation:
//
// Service mode (default): connects to an employee directory service
// over HTTP. The base URL comes from --api-url, or from the api
// section of the config file named by STAFFDESK_CONFIG or --config.
//
// File mode (--file): loads employees and departments from a local
// fixture file (JSON with comments and trailing commas permitted) and
// keeps all mutations in memory. No service required — useful for
// demos and for trying the interface offline.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/staffdesk/lib/clock"
	"github.com/bureau-foundation/staffdesk/lib/config"
	"github.com/bureau-foundation/staffdesk/lib/roster"
	"github.com/bureau-foundation/staffdesk/lib/rosterui"
	"github.com/bureau-foundation/staffdesk/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var fixturePath string
	var apiURL string
	var configPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("staffdesk", pflag.ContinueOnError)
	flagSet.StringVar(&fixturePath, "file", "", "path to a fixture file; run entirely in memory")
	flagSet.StringVar(&apiURL, "api-url", "", "employee directory base URL (overrides the config file)")
	flagSet.StringVar(&configPath, "config", "", "path to staffdesk.yaml (default: $STAFFDESK_CONFIG)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("staffdesk")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	tuiHandler := rosterui.NewTUILogHandler(slog.LevelWarn)
	logger, cleanup, err := buildLogger(cfg, tuiHandler, logOutput)
	if err != nil {
		return err
	}
	defer cleanup()

	gateway, err := buildGateway(cfg, fixturePath, apiURL, logger)
	if err != nil {
		return err
	}

	model := rosterui.NewModel(gateway, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

// loadConfig resolves the configuration: an explicit --config path,
// then STAFFDESK_CONFIG, then built-in defaults. A missing config is
// only an error when explicitly requested; flags can supply
// everything the defaults lack.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}

	if os.Getenv("STAFFDESK_CONFIG") != "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}

	return config.Default(), nil
}

// buildGateway picks the persistence backend: the in-memory fixture
// gateway for --file, otherwise the HTTP client.
func buildGateway(cfg *config.Config, fixturePath, apiURL string, logger *slog.Logger) (rosterui.Gateway, error) {
	if fixturePath != "" {
		fixture, err := roster.LoadFixtureFile(fixturePath)
		if err != nil {
			return nil, fmt.Errorf("cannot load fixture %s: %w", fixturePath, err)
		}
		return roster.NewFixtureGateway(fixture, clock.Real()), nil
	}

	baseURL := cfg.API.BaseURL
	if apiURL != "" {
		baseURL = apiURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("no directory service configured: pass --api-url, set api.base_url in the config file, or use --file for an offline fixture")
	}

	return roster.NewClient(roster.Config{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: cfg.Timeout()},
		Logger:     logger,
	})
}

// buildLogger assembles the slog logger for the session. Inside the
// TUI, warnings and errors go to the status bar via the TUI handler;
// stderr would corrupt the alt-screen display. An optional JSONL file
// captures all records for post-mortem debugging. When stdout is not
// a terminal (e.g. piped --version runs or CI), a plain text handler
// on stderr is used instead of the TUI handler.
func buildLogger(cfg *config.Config, tuiHandler *rosterui.TUILogHandler, logOutput string) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var primary slog.Handler = tuiHandler
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		primary = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	filePath := logOutput
	if filePath == "" {
		filePath = cfg.Logging.File
	}
	if filePath == "" {
		return slog.New(primary), func() {}, nil
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", filePath, err)
	}
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(fanoutHandler{primary, fileHandler}), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `staffdesk — interactive terminal UI for managing employee records.

Connects to an employee directory service over HTTP. The base URL
comes from --api-url or the config file named by STAFFDESK_CONFIG or
--config. Use --file to run offline against a local fixture instead.

Usage:
  staffdesk [flags]

Examples:
  # Connect to a local directory service
  staffdesk --api-url http://localhost:8080

  # Use a config file
  STAFFDESK_CONFIG=~/.config/staffdesk.yaml staffdesk

  # Try the interface offline with sample data
  staffdesk --file roster.jsonc

Keys:
  j/k move    e edit    d delete    / filter    r refresh
  Tab switch pane    Ctrl+S save    Esc cancel    q quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
