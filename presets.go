package stroll

import "iter"

// PythonExclude matches the debris a Python build, test and release
// cycle leaves behind:
//
//   - files or directories starting with a dot
//   - `*.egg-info/` directories and `.pyc` files at any depth
//   - `__pycache__/` directories at any depth
//   - `build/`, `dist/` and `htmlcov/` directly under a root only
var PythonExclude = []Pattern{
	Func(Dotfile),
	Func(MatchRoot("build/", "dist/", "htmlcov/")),
	Func(MatchSuffix(".egg-info/", ".pyc")),
	Func(Match("__pycache__/")),
}

// Python walks every file in a Python project, skipping generated
// files (see PythonExclude).
func Python(roots string, opts ...Option) iter.Seq2[Entry, error] {
	return Walk(roots, append([]Option{WithExclude(PythonExclude...)}, opts...)...)
}

// PythonSource walks the *.py files in a Python project, skipping
// generated files.
func PythonSource(roots string, opts ...Option) iter.Seq2[Entry, error] {
	prefix := []Option{
		WithInclude(Glob("*.py")),
		WithExclude(PythonExclude...),
	}
	return Walk(roots, append(prefix, opts...)...)
}
