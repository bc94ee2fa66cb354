package stroll

import (
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Walk traverses the given roots and yields one Entry per matching file
// (and per matching directory when Directories is enabled). Roots may
// be a single directory or several joined with the configured
// separator. The sequence is lazy: each pull performs at most one
// directory scan, and abandoning iteration simply stops the walk.
//
// Errors arrive through the second value of the sequence: a missing
// root yields a *MissingRootError before any entry, and an OnError
// callback that returns non-nil aborts the walk with that error. After
// a non-nil error the sequence ends.
func Walk(roots string, opts ...Option) iter.Seq2[Entry, error] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return walkSeq(splitRoots(roots, o.separator), o)
}

// WalkRoots is Walk for an explicit list of roots.
func WalkRoots(roots []string, opts ...Option) iter.Seq2[Entry, error] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return walkSeq(roots, o)
}

// List runs Walk eagerly and collects the results. It returns the first
// error the walk yields.
func List(roots string, opts ...Option) ([]Entry, error) {
	var entries []Entry
	for e, err := range Walk(roots, opts...) {
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func walkSeq(roots []string, o options) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		resolved, err := resolveRoots(roots, o.ignoreMissingRoots)
		if err != nil {
			o.logger.Error("walk failed: %v", err)
			yield(Entry{}, err)
			return
		}

		exclude := o.exclude
		if !o.excludeSet {
			exclude = DefaultExclude
		}

		w := &walker{
			opts:     o,
			include:  compile(o.include, true),
			exclude:  compile(exclude, false),
			withRoot: o.rootMode == RootAlways || (o.rootMode == RootAuto && o.relative && len(resolved) > 1),
		}
		if o.suffixSet {
			w.suffixes = make(map[string]struct{})
			if o.suffix == "" {
				w.suffixes[""] = struct{}{}
			} else {
				for _, s := range strings.Split(o.suffix, o.separator) {
					w.suffixes[strings.TrimSpace(s)] = struct{}{}
				}
			}
		}

		// Roots are walked in the order given; output is a plain
		// concatenation of each root's sequence.
		for _, root := range resolved {
			o.logger.Debug("walking root %q (resolved %q)", root.Raw, root.Abs)
			if !w.walkDir(root, root.Abs, "", yield) {
				return
			}
		}
	}
}

// walker carries the compiled configuration of one walk. It is built
// fresh per invocation and never shared.
type walker struct {
	opts     options
	include  *matcher
	exclude  *matcher
	suffixes map[string]struct{} // nil when no suffix restriction
	withRoot bool
}

// child is a sub-directory entry; link marks symlinks to directories,
// which are classified as directories but only descended into when
// FollowLinks is enabled.
type child struct {
	name string
	link bool
}

// walkDir enumerates one directory. dir is absolute; rel is its path
// relative to the root in slash form ("" for the root itself). The
// return value is false when the consumer stopped pulling or the walk
// aborted.
func (w *walker) walkDir(root Root, dir, rel string, yield func(Entry, error) bool) bool {
	entries, err := readDir(dir)
	if err != nil {
		scanErr := &ScanError{Path: dir, Err: err}
		if w.opts.onError != nil {
			if aerr := w.opts.onError(scanErr); aerr != nil {
				w.opts.logger.Error("aborting walk at %q: %v", dir, aerr)
				yield(Entry{}, aerr)
				return false
			}
		}
		w.opts.logger.Debug("skipping unreadable directory %q: %v", dir, err)
		return true
	}

	var files []string
	var dirs []child
	for _, e := range entries {
		if isDir, isLink := classify(e, dir); isDir {
			dirs = append(dirs, child{name: e.Name(), link: isLink})
		} else {
			files = append(files, e.Name())
		}
	}
	if w.opts.sorted {
		sort.Strings(files)
		sort.Slice(dirs, func(i, j int) bool { return dirs[i].name < dirs[j].name })
	}

	accept := func(name string, isDir bool) bool {
		c := Candidate{
			Name:  name,
			Dir:   dir,
			Root:  root.Abs,
			Rel:   path.Join(rel, name),
			IsDir: isDir,
		}
		return w.include.match(c) && !w.exclude.match(c)
	}

	// Excluded directories are pruned from recursion in both traversal
	// orders, so an exclusion rule governs visiting, not just emission.
	accepted := dirs[:0:0]
	for _, d := range dirs {
		if accept(d.name, true) {
			accepted = append(accepted, d)
		} else {
			w.opts.logger.Debug("pruning directory %q", path.Join(rel, d.name))
		}
	}

	emitFiles := func() bool {
		for _, f := range files {
			if accept(f, false) && !w.emit(root, dir, rel, f, yield) {
				return false
			}
		}
		return true
	}
	emitDirs := func() bool {
		if !w.opts.directories {
			return true
		}
		for _, d := range accepted {
			if !w.emit(root, dir, rel, d.name, yield) {
				return false
			}
		}
		return true
	}
	recurse := func() bool {
		for _, d := range accepted {
			if d.link && !w.opts.followLinks {
				continue
			}
			if !w.walkDir(root, filepath.Join(dir, d.name), path.Join(rel, d.name), yield) {
				return false
			}
		}
		return true
	}

	if w.opts.topdown {
		return emitFiles() && emitDirs() && recurse()
	}
	return recurse() && emitFiles() && emitDirs()
}

// emit shapes one accepted entry and hands it to the consumer. The
// suffix restriction is checked here, after the filter, as an
// additional mandatory constraint.
func (w *walker) emit(root Root, dir, rel, name string, yield func(Entry, error) bool) bool {
	if w.suffixes != nil {
		if _, ok := w.suffixes[filepath.Ext(name)]; !ok {
			return true
		}
	}
	var p string
	if w.opts.relative {
		p = filepath.FromSlash(path.Join(rel, name))
	} else {
		p = filepath.Join(dir, name)
	}
	e := Entry{Path: p}
	if w.withRoot {
		e.Root = root.Raw
	}
	return yield(e, nil)
}

// classify reports whether a directory entry is (or points at) a
// directory. Symlinks are resolved so a link to a directory is listed
// with the sub-directories, mirroring what os.walk does; whether it is
// descended into is decided later by FollowLinks.
func classify(e fs.DirEntry, dir string) (isDir, isLink bool) {
	if e.IsDir() {
		return true, false
	}
	if e.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err == nil && info.IsDir() {
			return true, true
		}
	}
	return false, false
}

// readDir returns a directory's entries in OS order. The handle is
// closed before anything is yielded, so abandoning iteration early
// never leaks an open directory.
func readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}
