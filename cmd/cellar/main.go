// ABOUTME: CLI entry point for cellar with terminal crash recovery
// ABOUTME: Parses flags, loads config and catalogue, dispatches to print, tea or raw mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// BubbleTea's init from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the first frame.
	_ "github.com/mauromedda/cellar-go/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/cellar-go/internal/catalog"
	"github.com/mauromedda/cellar-go/internal/config"
	cellarlog "github.com/mauromedda/cellar-go/internal/log"
	"github.com/mauromedda/cellar-go/internal/mode/interactive"
	"github.com/mauromedda/cellar-go/internal/mode/interactive/btea"
	"github.com/mauromedda/cellar-go/internal/mode/print"
	"github.com/mauromedda/cellar-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("cellar %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the initialization sequence and dispatches to the selected mode.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := loadSettings(args, cwd)
	if err != nil {
		return err
	}
	applyLogLevel(settings, args.debug)

	store, err := loadCatalog(settings.Catalog)
	if err != nil {
		return err
	}

	if args.print || !term.IsTerminal(int(os.Stdout.Fd())) {
		n, err := print.Run(os.Stdout, store, print.Config{OutputFormat: args.format, Query: args.query})
		cellarlog.Debug("print: listed %d wines", n)
		return err
	}

	deps := interactive.Deps{
		Store:    store,
		Settings: settings,
		Keys:     config.KeybindingsFrom(settings),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closeLog := redirectLog()
	defer closeLog()

	switch settings.Mode {
	case config.ModeRaw:
		pt := terminal.NewProcessTerminal()
		defer terminal.RestoreOnPanic(pt)
		err = interactive.Run(ctx, pt, deps)
	default:
		err = btea.Run(ctx, deps)
	}
	if err != nil {
		return err
	}

	if args.save {
		if err := store.SaveFile(settings.Catalog); err != nil {
			return err
		}
		cellarlog.Info("saved %d wines to %s", store.Len(), settings.Catalog)
	}
	return nil
}

// loadSettings reads -config when given, else the global and local files
// under cwd, then applies flag overrides.
func loadSettings(args cliArgs, cwd string) (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if args.config != "" {
		settings, err = config.LoadFile(args.config)
	} else {
		settings, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	if args.catalog != "" {
		settings.Catalog = args.catalog
	}
	if args.mode != "" {
		settings.Mode = args.mode
	}
	if args.debug {
		settings.LogLevel = "debug"
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if args.save && settings.Catalog == "" {
		return nil, errors.New("-save needs a catalogue file")
	}
	return settings, nil
}

func applyLogLevel(settings *config.Settings, debug bool) {
	if debug {
		cellarlog.SetLevel(cellarlog.LevelDebug)
		return
	}
	level, err := cellarlog.ParseLevel(settings.LogLevel)
	if err != nil {
		cellarlog.Warn("config: %v", err)
	}
	cellarlog.SetLevel(level)
}

// loadCatalog reads path, or returns the built-in sample when path is empty.
func loadCatalog(path string) (*catalog.Store, error) {
	if path == "" {
		return catalog.Sample(), nil
	}
	return catalog.LoadFile(path)
}

// redirectLog sends log output to the log file while a full-screen front-end
// owns the terminal. The returned func restores stderr.
func redirectLog() func() {
	path := config.LogFile()
	var w io.Writer = io.Discard
	var f *os.File
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			w = f
		}
	}
	prev := cellarlog.SetOutput(w)
	return func() {
		cellarlog.SetOutput(prev)
		if f != nil {
			_ = f.Close()
		}
	}
}
