// Package identity resolves who is running the process and on which branch.
// The providers are plain functions so callers can swap them out.
package identity

import (
	"context"
	"fmt"
	"os/user"
)

type Identity struct {
	Username string `json:"username" yaml:"username"`
}

// IdentityProvider returns the identity of the local user.
type IdentityProvider func(ctx context.Context) (Identity, error)

// BranchProvider returns the current source control branch name. The value is
// opaque: it may be a branch, "HEAD" for a detached head, or anything else.
type BranchProvider func(ctx context.Context) (string, error)

// OSUser looks up the user owning the process.
func OSUser(_ context.Context) (Identity, error) {
	current, err := user.Current()
	if err != nil {
		return Identity{}, fmt.Errorf("could not get current user: %w", err)
	}

	return Identity{Username: current.Username}, nil
}

func Static(username string) IdentityProvider {
	return func(context.Context) (Identity, error) {
		return Identity{Username: username}, nil
	}
}

func StaticBranch(name string) BranchProvider {
	return func(context.Context) (string, error) {
		return name, nil
	}
}
