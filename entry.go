package stroll

import (
	"fmt"
	"path/filepath"
)

// RootMode controls whether results carry the root they were found
// under.
type RootMode int

const (
	// RootAuto attaches roots only when there is more than one root and
	// relative paths were requested, so a relative path is never
	// ambiguous about where it belongs.
	RootAuto RootMode = iota
	// RootAlways attaches the originating root to every result.
	RootAlways
	// RootNever yields bare paths.
	RootNever
)

// Entry is a single walk result. Path is absolute unless relative
// output was requested. Root is the root as supplied by the caller and
// is empty unless root attachment is in effect (see RootMode).
type Entry struct {
	Root string
	Path string
}

// Base returns the final element of the entry's path.
func (e Entry) Base() string { return filepath.Base(e.Path) }

// Ext returns the entry's file name extension, including the dot.
func (e Entry) Ext() string { return filepath.Ext(e.Path) }

// Join joins path elements onto the entry's path.
func (e Entry) Join(elem ...string) string {
	return filepath.Join(append([]string{e.Path}, elem...)...)
}

// Abs rebases a relative entry on its root. Entries that are already
// absolute, or that carry no root, are returned as-is.
func (e Entry) Abs() string {
	if e.Root == "" || filepath.IsAbs(e.Path) {
		return e.Path
	}
	return filepath.Join(e.Root, e.Path)
}

func (e Entry) String() string {
	if e.Root == "" {
		return e.Path
	}
	return fmt.Sprintf("(%s, %s)", e.Root, e.Path)
}
