// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of a walk.
func DisplayResults(
	logger Logger,
	entryCount int64,
	duration time.Duration,
	quiet bool,
) {
	if !quiet {
		logger.Info("Listed %d entries.", entryCount)
		logger.Info("Walk complete in %v.", duration.Round(time.Millisecond))
	}
}

// DisplayScanErrors prints the directories that could not be read and
// were skipped during the walk.
func DisplayScanErrors(
	logger Logger,
	scanErrors []error,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Directories (%d) ---", len(scanErrors))
	if len(scanErrors) > 0 {
		// Sort for consistent output
		sorted := make([]string, len(scanErrors))
		for i, err := range scanErrors {
			sorted[i] = err.Error()
		}
		sort.Strings(sorted)
		for _, msg := range sorted {
			fmt.Fprintf(output, "Skipped: %s\n", msg)
		}
	} else {
		infoLog("No directories were skipped.")
	}
	infoLog("--- End Skipped Directories ---")
}
