package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all command-line settings for the stroll CLI.
type Config struct {
	// Roots to walk, from the positional arguments. Each element may
	// itself be a separator-joined list.
	Roots []string

	// Traversal settings
	BottomUp      bool
	Follow        bool
	Directories   bool
	Relative      bool
	WithRoot      string // "auto", "always" or "never"
	NoSort        bool
	Separator     string
	IgnoreMissing bool

	// Filtering settings
	Include      string
	Exclude      string
	Suffix       string
	All          bool // include dotfiles
	Python       bool
	PythonSource bool
	GitIgnore    bool
	Strict       bool
	ShowErrors   bool

	// Output settings
	JSONOutput bool
	Print0     bool
	NoColor    bool
	UseColors  bool
	OutputFile string

	// Logging settings
	Verbose  bool
	Quiet    bool
	LogLevel string

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a Config from the command-line flags and arguments.
func New() *Config {
	c := &Config{
		Version: "1.0.0",
	}

	flag.BoolVar(&c.BottomUp, "bottom-up", false, "Emit directories after their descendants (post-order)")
	flag.BoolVar(&c.Follow, "follow", false, "Follow symbolic links to directories")
	flag.BoolVar(&c.Directories, "dirs", false, "Also list directories, not just files")
	flag.BoolVar(&c.Relative, "relative", false, "Print paths relative to their root")
	flag.StringVar(&c.WithRoot, "with-root", "auto", "Attach the originating root to results: auto, always or never")
	flag.BoolVar(&c.NoSort, "no-sort", false, "List entries in OS order instead of sorted order")
	flag.StringVar(&c.Separator, "separator", ",", "Separator used to split joined root and suffix lists")
	flag.BoolVar(&c.IgnoreMissing, "ignore-missing", false, "Silently skip roots that do not exist")
	flag.StringVar(&c.Include, "include", "", "Glob patterns entries must match (separator-joined)")
	flag.StringVar(&c.Exclude, "exclude", "", "Glob patterns for entries to skip (separator-joined)")
	flag.StringVar(&c.Suffix, "suffix", "", "Only list entries with these extensions (e.g. '.go,.md')")
	flag.BoolVar(&c.All, "all", false, "Include dotfiles (disables the default exclusion)")
	flag.BoolVar(&c.Python, "python", false, "Skip generated files of a Python project")
	flag.BoolVar(&c.PythonSource, "python-source", false, "List only *.py files, skipping generated files")
	flag.BoolVar(&c.GitIgnore, "gitignore", false, "Also skip everything each root's .gitignore rules ignore")
	flag.BoolVar(&c.Strict, "strict", false, "Abort on the first unreadable directory instead of skipping it")
	flag.BoolVar(&c.ShowErrors, "show-errors", false, "List unreadable directories at the end")
	flag.BoolVar(&c.JSONOutput, "json", false, "Output results as a JSON array")
	flag.BoolVar(&c.Print0, "0", false, "Terminate each result with NUL instead of newline")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.StringVar(&c.OutputFile, "output", "", "Write results to a file instead of stdout")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	c.Roots = flag.Args()
	if len(c.Roots) == 0 {
		c.Roots = []string{"."}
	}

	// Colors only make sense on a terminal, and never inside JSON or
	// NUL-terminated output.
	c.UseColors = !c.NoColor && !c.JSONOutput && !c.Print0 &&
		isatty.IsTerminal(os.Stdout.Fd()) && c.OutputFile == ""

	return c
}
