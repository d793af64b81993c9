// Command ls-orrery is an animated, interactive solar system for the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/catalog"
	"github.com/litescript/ls-orrery/internal/errors"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/ui"
	"github.com/litescript/ls-orrery/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode bool
	jsonPath    string
	showVersion bool
)

func main() {
	catalogPath := flag.String("catalog", "", "Load planets from a TOML catalog instead of the built-in one")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file (the TUI owns the terminal, so logs are off otherwise)")
	seed := flag.Uint64("seed", ui.DefaultConfig().Seed, "Starfield seed")
	noStars := flag.Bool("no-stars", false, "Start with the starfield hidden")
	flag.BoolVar(&summaryMode, "summary", false, "Print the catalog table instead of the TUI")
	flag.StringVar(&jsonPath, "json", "", "Export the catalog as JSON to file (use - for stdout)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("ls-orrery %s\n", version.Version)
		return
	}

	// Set up logging
	level := logging.ParseLevel(*logLevel)
	logger := logging.Discard()
	if *logFile != "" {
		fileLogger, closeLog, err := logging.OpenFile(*logFile, level)
		if err != nil {
			fail(err)
		}
		defer closeLog()
		logger = fileLogger
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		fail(err)
	}
	logger.Info("catalog: %d bodies, center %s", cat.Len(), cat.Center().ID)

	// Headless mode: no TUI. Output that is not a terminal gets the summary.
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if summaryMode || jsonPath != "" || !isTTY {
		if err := runHeadless(os.Stdout, cat, !isTTY); err != nil {
			fail(err)
		}
		return
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Debug("signal received, shutting down")
		cancel()
	}()

	uiCfg := ui.DefaultConfig()
	uiCfg.Seed = *seed
	uiCfg.ShowStars = !*noStars

	ctl := state.NewController(cat, state.DefaultConfig())
	model := ui.New(ctl, uiCfg, logger.Named("ui"))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exited")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// runHeadless writes the requested exports to w. With no explicit mode
// (piped output) it falls back to the summary table.
func runHeadless(w io.Writer, cat *catalog.Catalog, piped bool) error {
	if jsonPath != "" {
		if err := writeJSON(w, cat, jsonPath); err != nil {
			return err
		}
	}

	if summaryMode || (piped && jsonPath == "") {
		catalog.WriteSummary(w, cat)
	}
	return nil
}

func writeJSON(stdout io.Writer, cat *catalog.Catalog, path string) error {
	export := catalog.Export(cat)
	if path == "-" {
		return errors.Wrap(export.WriteJSON(stdout), "write JSON to stdout")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create JSON file")
	}
	defer f.Close()
	return errors.Wrap(export.WriteJSON(f), "write JSON to file")
}

// fail prints err with any hints and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
	os.Exit(1)
}
