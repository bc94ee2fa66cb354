package stroll

import (
	"fmt"
	"strings"
)

// MissingRootError reports roots that do not exist or are not
// directories. Unless ignoring missing roots was requested, it is
// yielded before any traversal begins, naming every offending root.
type MissingRootError struct {
	Roots []string
}

func (e *MissingRootError) Error() string {
	noun := "directory"
	if len(e.Roots) != 1 {
		noun = "directories"
	}
	return fmt.Sprintf("stroll: no such %s: %s", noun, strings.Join(e.Roots, ", "))
}

// ScanError wraps an OS-level failure reading a directory's entries. It
// is handed to the OnError callback; by default the unreadable
// directory is skipped and the walk continues.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("stroll: scanning %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }
