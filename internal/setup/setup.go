// Package setup translates CLI configuration into walk options.
package setup

import (
	"fmt"
	"strings"

	"github.com/bethropolis/stroll"
	"github.com/bethropolis/stroll/internal/config"
)

// InfoLogger wraps the Info method for status updates.
type InfoLogger func(format string, args ...interface{})

// Options builds the stroll options for one invocation. record is
// called with every scan error that was skipped (for the -show-errors
// report); in strict mode it is not used because the first scan error
// aborts the walk.
func Options(cfg *config.Config, log stroll.Logger, record func(err error), infoLog InfoLogger) ([]stroll.Option, error) {
	opts := []stroll.Option{
		stroll.WithLogger(log),
		stroll.Separator(cfg.Separator),
	}

	if cfg.BottomUp {
		opts = append(opts, stroll.TopDown(false))
	}
	if cfg.Follow {
		opts = append(opts, stroll.FollowLinks(true))
	}
	if cfg.Directories {
		opts = append(opts, stroll.Directories(true))
	}
	if cfg.Relative {
		opts = append(opts, stroll.Relative(true))
	}
	if cfg.NoSort {
		opts = append(opts, stroll.Sorted(false))
	}
	if cfg.IgnoreMissing {
		opts = append(opts, stroll.IgnoreMissingRoots(true))
	}

	switch strings.ToLower(cfg.WithRoot) {
	case "", "auto":
		// RootAuto is the default.
	case "always":
		opts = append(opts, stroll.WithRootMode(stroll.RootAlways))
	case "never":
		opts = append(opts, stroll.WithRootMode(stroll.RootNever))
	default:
		return nil, fmt.Errorf("setup: invalid -with-root value '%s' (want auto, always or never)", cfg.WithRoot)
	}

	// --- Filter patterns ---
	var include, exclude []stroll.Pattern
	switch {
	case cfg.PythonSource:
		include = append(include, stroll.Glob("*.py"))
		exclude = append(exclude, stroll.PythonExclude...)
		infoLog("Listing Python source files, skipping generated files.")
	case cfg.Python:
		exclude = append(exclude, stroll.PythonExclude...)
		infoLog("Skipping generated files of a Python project.")
	}
	if cfg.Include != "" {
		include = append(include, globs(cfg.Include, cfg.Separator)...)
		infoLog("Using include patterns: %s", cfg.Include)
	}
	if cfg.Exclude != "" {
		exclude = append(exclude, globs(cfg.Exclude, cfg.Separator)...)
		infoLog("Using exclude patterns: %s", cfg.Exclude)
	}
	if cfg.GitIgnore {
		for _, root := range cfg.Roots {
			for _, r := range strings.Split(root, cfg.Separator) {
				if r = strings.TrimSpace(r); r == "" {
					continue
				}
				p, err := stroll.GitIgnore(r)
				if err != nil {
					return nil, fmt.Errorf("setup: initializing gitignore rules: %w", err)
				}
				exclude = append(exclude, stroll.Func(p))
			}
		}
		infoLog("Honoring .gitignore rules.")
	}
	if cfg.All && len(exclude) == 0 {
		// Explicit empty set disables the default dotfile exclusion.
		opts = append(opts, stroll.WithExclude())
		infoLog("Including hidden files/directories.")
	} else if len(exclude) > 0 {
		if !cfg.All {
			exclude = append(exclude, stroll.Func(stroll.Dotfile))
		}
		opts = append(opts, stroll.WithExclude(exclude...))
	}
	if len(include) > 0 {
		opts = append(opts, stroll.WithInclude(include...))
	}

	if cfg.Suffix != "" {
		opts = append(opts, stroll.Suffix(cfg.Suffix))
		infoLog("Only including extensions: %s", cfg.Suffix)
	}

	// --- Scan error policy ---
	if cfg.Strict {
		opts = append(opts, stroll.OnError(func(err error) error {
			return err
		}))
	} else {
		opts = append(opts, stroll.OnError(func(err error) error {
			log.Warn("%v", err)
			if record != nil {
				record(err)
			}
			return nil
		}))
	}

	return opts, nil
}

func globs(spec, separator string) []stroll.Pattern {
	var patterns []stroll.Pattern
	for _, g := range strings.Split(spec, separator) {
		if g = strings.TrimSpace(g); g != "" {
			patterns = append(patterns, stroll.Glob(g))
		}
	}
	return patterns
}
