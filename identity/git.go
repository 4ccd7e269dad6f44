package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/jtarchie/envname/command"
)

// DetachedHead is what git reports as the branch when HEAD is not a branch.
const DetachedHead = "HEAD"

var ErrNoCommits = errors.New("repository has no commits")

// GitBranch asks the git binary for the branch checked out in the working directory.
func GitBranch(ctx context.Context) (string, error) {
	return NewGitBranch(command.Run)(ctx)
}

// NewGitBranch builds a provider that runs `git rev-parse --abbrev-ref HEAD`
// through run. Failures from run are returned as is.
func NewGitBranch(run command.RunFunc) BranchProvider {
	return func(ctx context.Context) (string, error) {
		output, err := run(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
		if err != nil {
			return "", err
		}

		return strings.TrimRightFunc(string(output), unicode.IsSpace), nil
	}
}

// RepoBranch reads HEAD of the repository containing path without shelling out.
func RepoBranch(path string) BranchProvider {
	return func(_ context.Context) (string, error) {
		repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return "", fmt.Errorf("could not open repository %q: %w", path, err)
		}

		head, err := repo.Head()
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", fmt.Errorf("could not resolve HEAD in %q: %w", path, ErrNoCommits)
		}

		if err != nil {
			return "", fmt.Errorf("could not resolve HEAD in %q: %w", path, err)
		}

		if !head.Name().IsBranch() {
			return DetachedHead, nil
		}

		return head.Name().Short(), nil
	}
}
