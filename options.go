package stroll

// DefaultSeparator splits a string of roots (or suffixes) into
// individual elements.
const DefaultSeparator = ","

// DefaultExclude is the exclusion applied when a walk supplies none:
// dotfiles are skipped. It is a stateless shared constant; pass
// WithExclude() with no arguments to exclude nothing.
var DefaultExclude = []Pattern{Func(Dotfile)}

type options struct {
	topdown            bool
	onError            func(error) error
	followLinks        bool
	include            []Pattern
	exclude            []Pattern
	excludeSet         bool
	directories        bool
	relative           bool
	rootMode           RootMode
	sorted             bool
	suffix             string
	suffixSet          bool
	separator          string
	ignoreMissingRoots bool
	logger             Logger
}

func defaultOptions() options {
	return options{
		topdown:   true,
		sorted:    true,
		separator: DefaultSeparator,
		logger:    NoopLogger{},
	}
}

// Option is a functional option configuring a walk.
type Option func(*options)

// TopDown selects pre-order (true, the default) or post-order (false)
// traversal. The order governs whether a directory's own path is
// yielded before or after its descendants.
func TopDown(enabled bool) Option {
	return func(o *options) {
		o.topdown = enabled
	}
}

// OnError installs a callback invoked with a *ScanError when a
// directory cannot be read. Returning nil skips the unreadable
// directory and continues; returning an error aborts the walk, and
// that error is yielded to the consumer on the next pull. Without a
// callback scan errors are silently swallowed.
func OnError(fn func(error) error) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// FollowLinks enables descending into symbolic links to directories.
// Symlink cycles are not detected; with FollowLinks(true) a cycle makes
// the walk non-terminating.
func FollowLinks(enabled bool) Option {
	return func(o *options) {
		o.followLinks = enabled
	}
}

// WithInclude sets the include Pattern Set: an entry must match at
// least one element. No include set means every entry is accepted.
func WithInclude(patterns ...Pattern) Option {
	return func(o *options) {
		o.include = patterns
	}
}

// WithExclude sets the exclude Pattern Set: an entry matching any
// element is skipped, and excluded directories are not descended into.
// Calling WithExclude with no arguments disables the default dotfile
// exclusion.
func WithExclude(patterns ...Pattern) Option {
	return func(o *options) {
		o.exclude = patterns
		o.excludeSet = true
	}
}

// Directories also yields directory paths, subject to the same filter,
// interleaved per the traversal order. By default only regular files
// are yielded.
func Directories(enabled bool) Option {
	return func(o *options) {
		o.directories = enabled
	}
}

// Relative yields paths relative to the root they were found under
// instead of absolute paths.
func Relative(enabled bool) Option {
	return func(o *options) {
		o.relative = enabled
	}
}

// WithRootMode controls whether results carry their originating root.
// The default is RootAuto.
func WithRootMode(mode RootMode) Option {
	return func(o *options) {
		o.rootMode = mode
	}
}

// Sorted yields directory entries at each level in lexicographic order
// (the default). When disabled entries come in whatever order the OS
// returns them, which may already be sorted on some platforms.
func Sorted(enabled bool) Option {
	return func(o *options) {
		o.sorted = enabled
	}
}

// Suffix restricts results to entries whose extension is one of the
// separator-joined suffixes, e.g. ".py" or ".go,.md". The empty string
// means "no extension". The restriction is mandatory and independent of
// the include/exclude filter.
func Suffix(spec string) Option {
	return func(o *options) {
		o.suffix = spec
		o.suffixSet = true
	}
}

// Separator sets the string used to split a joined roots argument (and
// a Suffix spec). The default is a comma.
func Separator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// IgnoreMissingRoots silently skips roots that do not exist. By default
// a missing root fails the whole walk before any result is produced.
func IgnoreMissingRoots(enabled bool) Option {
	return func(o *options) {
		o.ignoreMissingRoots = enabled
	}
}

// WithLogger sets a logger for traversal diagnostics.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
