package identity_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/jtarchie/envname/command"
	"github.com/jtarchie/envname/identity"
	. "github.com/onsi/gomega"
)

func fakeRun(output string, err error, seen *[]string) command.RunFunc {
	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		if seen != nil {
			*seen = append([]string{name}, args...)
		}

		return []byte(output), err
	}
}

func TestNewGitBranch(t *testing.T) {
	t.Parallel()

	t.Run("runs rev-parse and trims the newline", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		var seen []string

		branch, err := identity.NewGitBranch(fakeRun("main\n", nil, &seen))(context.Background())
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(branch).To(Equal("main"))
		assert.Expect(seen).To(Equal([]string{"git", "rev-parse", "--abbrev-ref", "HEAD"}))
	})

	t.Run("trims trailing whitespace and carriage returns", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		branch, err := identity.NewGitBranch(fakeRun("feature/user-authentication  \r\n", nil, nil))(context.Background())
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(branch).To(Equal("feature/user-authentication"))
	})

	t.Run("detached head", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		branch, err := identity.NewGitBranch(fakeRun("HEAD\n", nil, nil))(context.Background())
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(branch).To(Equal(identity.DetachedHead))
	})

	t.Run("failures propagate unchanged", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		failure := errors.New("not a git repository")

		_, err := identity.NewGitBranch(fakeRun("", failure, nil))(context.Background())
		assert.Expect(err).To(BeIdenticalTo(failure))
	})
}

func initRepo(t *testing.T) (string, *git.Repository, plumbing.Hash) {
	t.Helper()

	assert := NewGomegaWithT(t)

	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	assert.Expect(err).ToNot(HaveOccurred())

	err = repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main")))
	assert.Expect(err).ToNot(HaveOccurred())

	err = os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello"), 0o600)
	assert.Expect(err).ToNot(HaveOccurred())

	worktree, err := repo.Worktree()
	assert.Expect(err).ToNot(HaveOccurred())

	_, err = worktree.Add("README.md")
	assert.Expect(err).ToNot(HaveOccurred())

	hash, err := worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	assert.Expect(err).ToNot(HaveOccurred())

	return dir, repo, hash
}

func TestRepoBranch(t *testing.T) {
	t.Parallel()

	t.Run("reads the checked out branch", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		dir, repo, _ := initRepo(t)

		branch, err := identity.RepoBranch(dir)(context.Background())
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(branch).To(Equal("main"))

		worktree, err := repo.Worktree()
		assert.Expect(err).ToNot(HaveOccurred())

		err = worktree.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName("feature/user-authentication"),
			Create: true,
		})
		assert.Expect(err).ToNot(HaveOccurred())

		branch, err = identity.RepoBranch(dir)(context.Background())
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(branch).To(Equal("feature/user-authentication"))
	})

	t.Run("finds the repository from a subdirectory", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		dir, _, _ := initRepo(t)
		nested := filepath.Join(dir, "a", "b")
		assert.Expect(os.MkdirAll(nested, 0o755)).To(Succeed())

		branch, err := identity.RepoBranch(nested)(context.Background())
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(branch).To(Equal("main"))
	})

	t.Run("detached head", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		dir, repo, hash := initRepo(t)

		worktree, err := repo.Worktree()
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(worktree.Checkout(&git.CheckoutOptions{Hash: hash})).To(Succeed())

		branch, err := identity.RepoBranch(dir)(context.Background())
		assert.Expect(err).ToNot(HaveOccurred())
		assert.Expect(branch).To(Equal(identity.DetachedHead))
	})

	t.Run("repository without commits", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		assert.Expect(err).ToNot(HaveOccurred())

		_, err = identity.RepoBranch(dir)(context.Background())
		assert.Expect(err).To(MatchError(identity.ErrNoCommits))
	})

	t.Run("not a repository", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		_, err := identity.RepoBranch(t.TempDir())(context.Background())
		assert.Expect(err).To(MatchError(git.ErrRepositoryNotExists))
	})
}

func TestGitBranchAgainstGit(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	assert := NewGomegaWithT(t)

	dir, _, _ := initRepo(t)
	runner := &command.Runner{Dir: dir}

	branch, err := identity.NewGitBranch(runner.Run)(context.Background())
	assert.Expect(err).ToNot(HaveOccurred())
	assert.Expect(branch).To(Equal("main"))
}
