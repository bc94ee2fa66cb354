package stroll

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitIgnorePredicate(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "app.log", "keep.log", "main.go", "sub/debug.log")
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".gitignore"),
		[]byte("*.log\n!keep.log\n"),
		0o644))

	p, err := GitIgnore(root)
	require.NoError(t, err)

	c := func(name, rel string) Candidate {
		return Candidate{
			Name: name,
			Dir:  filepath.Dir(filepath.Join(root, filepath.FromSlash(rel))),
			Root: root,
			Rel:  rel,
		}
	}

	assert.True(t, p(c("app.log", "app.log")))
	assert.True(t, p(c("debug.log", "sub/debug.log")))
	assert.False(t, p(c("main.go", "main.go")), "unmatched file is not excluded")
	assert.False(t, p(c("keep.log", "keep.log")), "negation rules re-include")
}

func TestGitIgnoreInWalk(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "app.log", "main.go", "sub/debug.log", "sub/mod.go")
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".gitignore"),
		[]byte("*.log\n"),
		0o644))

	p, err := GitIgnore(root)
	require.NoError(t, err)

	entries, err := List(root, Relative(true),
		WithExclude(Func(Dotfile), Func(p)))
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go", "sub/mod.go"}, slashPaths(entries))
}

func TestGitIgnoreOutsideRepo(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.log")

	p, err := GitIgnore(root)
	require.NoError(t, err)

	outside := Candidate{Name: "x.log", Dir: "/elsewhere", Root: "/elsewhere", Rel: "x.log"}
	assert.False(t, p(outside))
}
