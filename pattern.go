// Package stroll walks one or more directory trees and yields the files
// (and optionally directories) that pass an include/exclude filter. It
// generalizes filepath.WalkDir: multiple roots, absolute or root-relative
// output, pre- or post-order traversal, symlink following, glob or
// predicate filtering, and presets for skipping generated files.
package stroll

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// Candidate describes a directory entry being tested by a filter.
type Candidate struct {
	Name  string // base name of the entry
	Dir   string // absolute path of the containing directory
	Root  string // absolute path of the root being walked
	Rel   string // path of the entry relative to Root, slash-separated
	IsDir bool
}

// Predicate is a caller-supplied boolean filter over walk candidates.
type Predicate func(c Candidate) bool

// Pattern is one element of an include or exclude set: either a glob
// string or an arbitrary predicate, normalized at construction so the
// walker never branches on the variant. The zero value matches nothing.
type Pattern struct {
	glob string
	fn   Predicate
}

// Glob builds a Pattern from a shell-style wildcard string (fnmatch
// semantics: `*`, `?` and character classes, with `*` crossing path
// separators).
//
// Matching policy: after stripping an optional trailing slash, a glob
// containing a path separator is matched against the entry's
// root-relative path in slash form; any other glob is matched against
// the base name. A glob that ended in a slash applies to directories
// only; all other globs apply to files only.
func Glob(pattern string) Pattern { return Pattern{glob: pattern} }

// Func builds a Pattern from a predicate. Predicates are consulted for
// files and directories alike.
func Func(p Predicate) Pattern { return Pattern{fn: p} }

// Globs splits a comma-joined glob list into patterns, trimming
// whitespace around each element.
func Globs(spec string) []Pattern {
	var patterns []Pattern
	for _, g := range strings.Split(spec, ",") {
		if g = strings.TrimSpace(g); g != "" {
			patterns = append(patterns, Glob(g))
		}
	}
	return patterns
}

// matcher is a compiled Pattern Set, split per entry kind. An empty
// per-kind list reports matchOnEmpty: absence of constraint for an
// include set, absence of match for an exclude set.
type matcher struct {
	files        []Predicate
	dirs         []Predicate
	matchOnEmpty bool
}

func compile(patterns []Pattern, matchOnEmpty bool) *matcher {
	m := &matcher{matchOnEmpty: matchOnEmpty}
	for _, p := range patterns {
		switch {
		case p.fn != nil:
			m.files = append(m.files, p.fn)
			m.dirs = append(m.dirs, p.fn)
		case p.glob != "":
			glob := strings.TrimSuffix(p.glob, "/")
			dirOnly := len(glob) != len(p.glob)
			fullPath := strings.ContainsRune(glob, '/')
			fn := func(c Candidate) bool {
				if fullPath {
					return fnmatch.Match(glob, c.Rel, 0)
				}
				return fnmatch.Match(glob, c.Name, 0)
			}
			if dirOnly {
				m.dirs = append(m.dirs, fn)
			} else {
				m.files = append(m.files, fn)
			}
		}
	}
	return m
}

// match reports whether the candidate matches any element of the set.
func (m *matcher) match(c Candidate) bool {
	set := m.files
	if c.IsDir {
		set = m.dirs
	}
	if len(set) == 0 {
		return m.matchOnEmpty
	}
	for _, fn := range set {
		if fn(c) {
			return true
		}
	}
	return false
}

// Dotfile reports whether the candidate's name begins with a dot. It is
// the default exclude filter.
func Dotfile(c Candidate) bool {
	return strings.HasPrefix(c.Name, ".")
}

// Match returns a predicate matching entries whose name equals one of
// names. A trailing slash restricts a name to directories; a name
// without one applies to files only.
func Match(names ...string) Predicate {
	return func(c Candidate) bool {
		for _, n := range names {
			want := strings.TrimSuffix(n, "/")
			dirOnly := len(want) != len(n)
			if c.IsDir == dirOnly && c.Name == want {
				return true
			}
		}
		return false
	}
}

// MatchRoot is like Match but only for entries that are direct children
// of the root being walked.
func MatchRoot(names ...string) Predicate {
	inner := Match(names...)
	return func(c Candidate) bool {
		return c.Dir == c.Root && inner(c)
	}
}

// MatchSuffix returns a predicate matching entries whose name ends with
// one of the given suffixes, with the same trailing-slash convention as
// Match.
func MatchSuffix(suffixes ...string) Predicate {
	return func(c Candidate) bool {
		for _, s := range suffixes {
			want := strings.TrimSuffix(s, "/")
			dirOnly := len(want) != len(s)
			if c.IsDir == dirOnly && strings.HasSuffix(c.Name, want) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(c Candidate) bool {
		return !p(c)
	}
}
