package stroll

import (
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// GitIgnore builds an exclude predicate from the .gitignore rules of
// the repository rooted at root, loaded recursively the way git itself
// applies them. Entries outside the repository are never matched.
// Negation rules ("!pattern") re-include paths as usual.
func GitIgnore(root string) (Predicate, error) {
	absRoot, err := filepath.Abs(expandUser(root))
	if err != nil {
		return nil, fmt.Errorf("stroll: resolving gitignore root '%s': %w", root, err)
	}

	repo, err := gitignore.NewRepository(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stroll: loading gitignore rules from '%s': %w", absRoot, err)
	}

	return func(c Candidate) bool {
		rel, err := filepath.Rel(absRoot, filepath.Join(c.Dir, c.Name))
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return false
		}
		rel = filepath.ToSlash(rel)

		ignored := false
		included := false
		// The matcher can panic on some rule sets; a panic is treated
		// as "cannot determine" and the entry is not excluded.
		func() {
			defer func() {
				if r := recover(); r != nil {
					ignored, included = false, false
				}
			}()
			ignored = repo.Ignore(rel)
			if ignored {
				included = repo.Include(rel)
			}
		}()
		return ignored && !included
	}, nil
}
