package stroll

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Root pairs the caller-supplied form of a walk root with its resolved
// absolute form. Results report the raw form; traversal and matching
// use the absolute one.
type Root struct {
	Raw string
	Abs string
}

// splitRoots splits a joined roots argument into individual root
// strings, trimming whitespace and dropping empty elements.
func splitRoots(roots, separator string) []string {
	var out []string
	for _, r := range strings.Split(roots, separator) {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// expandUser replaces a leading "~" with the current user's home
// directory. Paths it cannot expand are returned unchanged.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// resolveRoots expands and absolutizes every root and checks that each
// exists and is a directory. Unless ignoreMissing is set, any missing
// root fails the whole call before enumeration begins for any root.
func resolveRoots(raw []string, ignoreMissing bool) ([]Root, error) {
	resolved := make([]Root, 0, len(raw))
	var missing []string
	for _, r := range raw {
		abs, err := filepath.Abs(expandUser(r))
		if err != nil {
			return nil, fmt.Errorf("stroll: resolving root '%s': %w", r, err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			missing = append(missing, r)
			continue
		}
		resolved = append(resolved, Root{Raw: r, Abs: abs})
	}
	if len(missing) > 0 && !ignoreMissing {
		return nil, &MissingRootError{Roots: missing}
	}
	return resolved, nil
}
