// Package git locates the enclosing git repository using go-git v6.
package git

import (
	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v6"
)

// ErrNotRepository is returned when the path is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// DiscoverRoot returns the worktree root of the repository enclosing path.
// The search walks up parent directories the way git itself does.
func DiscoverRoot(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", errors.Wrapf(ErrNotRepository, "%s", path)
		}

		return "", errors.Wrap(err, "failed to open repository")
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "failed to get worktree")
	}

	return worktree.Filesystem.Root(), nil
}
