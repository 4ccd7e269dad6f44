// Package naming scopes resource names to where the code runs: the
// environment label in CI, or the local user and branch on a workstation.
package naming

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jtarchie/envname/environ"
	"github.com/jtarchie/envname/identity"
	"github.com/jtarchie/envname/shorten"
)

// DefaultMaxLength bounds the stub of locally scoped names.
const DefaultMaxLength = 30

type Scoper struct {
	maxLength  int
	separator  string
	identity   identity.IdentityProvider
	branch     identity.BranchProvider
	classifier *environ.Classifier
	logger     *slog.Logger
}

type Option func(*Scoper)

// WithMaxLength sets the maximum stub length for locally scoped names.
func WithMaxLength(maxLength int) Option {
	return func(s *Scoper) { s.maxLength = maxLength }
}

// WithSeparator sets the separator placed between the stub and the digest.
func WithSeparator(separator string) Option {
	return func(s *Scoper) { s.separator = separator }
}

func WithIdentity(provider identity.IdentityProvider) Option {
	return func(s *Scoper) { s.identity = provider }
}

func WithBranch(provider identity.BranchProvider) Option {
	return func(s *Scoper) { s.branch = provider }
}

func WithClassifier(classifier *environ.Classifier) Option {
	return func(s *Scoper) { s.classifier = classifier }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scoper) { s.logger = logger }
}

func New(opts ...Option) *Scoper {
	scoper := &Scoper{
		maxLength:  DefaultMaxLength,
		separator:  shorten.DefaultSeparator,
		identity:   identity.OSUser,
		branch:     identity.GitBranch,
		classifier: environ.NewClassifier(environ.OS),
	}

	for _, opt := range opts {
		opt(scoper)
	}

	if scoper.logger == nil {
		scoper.logger = slog.Default()
	}

	scoper.logger = scoper.logger.WithGroup("naming")

	return scoper
}

// ScopedName builds a Scoper from opts and scopes name with it.
func ScopedName(ctx context.Context, name string, opts ...Option) (string, error) {
	return New(opts...).Name(ctx, name)
}

// Name returns "name-environment" in CI, unshortened. Elsewhere it returns
// "name-username-branch" shortened to the configured max length. Provider
// errors are returned without a fallback.
func (s *Scoper) Name(ctx context.Context, name string) (string, error) {
	if s.classifier.IsCI() {
		scoped := name + "-" + s.classifier.Name()
		s.logger.Debug("naming.ci", "name", name, "scoped", scoped)

		return scoped, nil
	}

	user, err := s.identity(ctx)
	if err != nil {
		return "", fmt.Errorf("could not resolve identity for %q: %w", name, err)
	}

	branch, err := s.branch(ctx)
	if err != nil {
		return "", fmt.Errorf("could not resolve branch for %q: %w", name, err)
	}

	composed := fmt.Sprintf("%s-%s-%s", name, user.Username, branch)
	scoped := shorten.ShortButUnique(composed, s.maxLength, s.separator)

	s.logger.Debug("naming.local", "name", name, "username", user.Username, "branch", branch, "scoped", scoped)

	return scoped, nil
}
