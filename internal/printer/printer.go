// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/stroll"
	"github.com/fatih/color"
)

// Printer writes walk results to the configured output destination in
// plain, colored, JSON or NUL-terminated form.
type Printer struct {
	output      io.Writer
	count       int64
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
	print0      bool
}

// New creates a Printer with default settings.
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output.
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode.
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// WithPrint0 terminates results with NUL instead of newline, for
// consumption by xargs -0 and friends.
func (p *Printer) WithPrint0(enabled bool) *Printer {
	p.print0 = enabled
	return p
}

// JSONEntry represents one walk result in JSON output.
type JSONEntry struct {
	Root string `json:"root,omitempty"`
	Path string `json:"path"`
}

// PrintEntry outputs one walk result.
func (p *Printer) PrintEntry(e stroll.Entry) {
	p.count++

	switch {
	case p.jsonOutput:
		if !p.jsonStarted {
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}
		data, err := json.Marshal(JSONEntry{Root: e.Root, Path: e.Path})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Fprintf(p.output, "  %s", data)
	case p.print0:
		if e.Root != "" {
			fmt.Fprintf(p.output, "%s\t%s\x00", e.Root, e.Path)
		} else {
			fmt.Fprintf(p.output, "%s\x00", e.Path)
		}
	default:
		if e.Root != "" {
			root := e.Root
			if p.useColors {
				root = color.CyanString(root)
			}
			fmt.Fprintf(p.output, "%s\t%s\n", root, e.Path)
		} else {
			fmt.Fprintf(p.output, "%s\n", e.Path)
		}
	}
}

// Finalize completes any pending operations (like closing the JSON
// array).
func (p *Printer) Finalize() {
	if p.jsonOutput {
		if p.jsonStarted {
			fmt.Fprint(p.output, "\n]\n")
		} else {
			fmt.Fprint(p.output, "[]\n")
		}
	}
}

// Count returns the number of entries printed.
func (p *Printer) Count() int64 {
	return p.count
}
