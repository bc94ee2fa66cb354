// Package app wires configuration, logging and output together and
// runs the walk.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bethropolis/stroll"
	"github.com/bethropolis/stroll/internal/config"
	"github.com/bethropolis/stroll/internal/logger"
	"github.com/bethropolis/stroll/internal/printer"
	"github.com/bethropolis/stroll/internal/setup"
	"github.com/bethropolis/stroll/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes the main application logic
func (a *App) Run() {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Printf("stroll version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	a.log.Debug("Roots: %v", a.cfg.Roots)
	a.log.Debug("Traversal: bottomUp=%v follow=%v dirs=%v relative=%v sort=%v",
		a.cfg.BottomUp, a.cfg.Follow, a.cfg.Directories, a.cfg.Relative, !a.cfg.NoSort)

	// --- Build walk options ---
	var scanErrors []error
	record := func(err error) {
		scanErrors = append(scanErrors, err)
	}
	opts, err := setup.Options(a.cfg, a.log, record, setup.InfoLogger(infoLog))
	if err != nil {
		a.log.Error("%v", err)
		os.Exit(1)
	}

	// --- Create the printer ---
	p := printer.New()
	p.WithOutput(a.Output)
	p.WithColors(a.cfg.UseColors)
	if a.cfg.JSONOutput {
		a.log.Debug("JSON output mode enabled")
		p.WithJSON(true)
		p.WithColors(false)
	} else if a.cfg.Print0 {
		p.WithPrint0(true)
		p.WithColors(false)
	}

	// --- Run the walk ---
	roots := strings.Join(a.cfg.Roots, a.cfg.Separator)
	infoLog("Walking: %s", roots)

	for e, err := range stroll.Walk(roots, opts...) {
		if err != nil {
			var missing *stroll.MissingRootError
			if errors.As(err, &missing) {
				a.log.Error("Missing root: %s", strings.Join(missing.Roots, ", "))
			} else {
				a.log.Error("Critical error during walk: %v", err)
			}
			os.Exit(1)
		}
		p.PrintEntry(e)
	}

	// Finalize the printer (important for JSON output to close the array)
	p.Finalize()

	// --- Show results summary ---
	summary.DisplayResults(a.log, p.Count(), time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowErrors {
		summary.DisplayScanErrors(a.log, scanErrors, os.Stderr, a.cfg.Quiet)
	}
}
