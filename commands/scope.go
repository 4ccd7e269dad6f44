package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jtarchie/envname/environ"
	"github.com/jtarchie/envname/identity"
	"github.com/jtarchie/envname/naming"
)

type Scope struct {
	Name         string `arg:""             help:"Base name to scope"                                                  validate:"required"`
	MaxLength    int    `default:"30"       env:"ENVNAME_MAX_LENGTH"                                                   help:"Maximum length of locally scoped names before a digest is appended" validate:"gte=0"`
	Separator    string `default:"-"        help:"Separator between the truncated name and the digest"`
	Repo         string `help:"Read the branch from the git repository at this path instead of running git" type:"existingdir"`
	CIVariable   string `default:"CI"       env:"ENVNAME_CI_VARIABLE"                                                  help:"Variable whose presence marks a CI run"`
	NameVariable string `default:"NODE_ENV" env:"ENVNAME_NAME_VARIABLE"                                                help:"Variable holding the environment name"`

	Stdout io.Writer `kong:"-"`

	identity identity.IdentityProvider `kong:"-"`
	branch   identity.BranchProvider   `kong:"-"`
	lookup   environ.LookupFunc        `kong:"-"`
}

// Run prints the name scoped to the current CI environment or local user and branch.
func (c *Scope) Run(logger *slog.Logger) error {
	err := validate(c)
	if err != nil {
		return err
	}

	logger = logger.WithGroup("scope")

	opts := []naming.Option{
		naming.WithMaxLength(c.MaxLength),
		naming.WithSeparator(c.Separator),
		naming.WithLogger(logger),
		naming.WithClassifier(newClassifier(c.lookup, c.CIVariable, c.NameVariable)),
	}

	if c.identity != nil {
		opts = append(opts, naming.WithIdentity(c.identity))
	}

	switch {
	case c.branch != nil:
		opts = append(opts, naming.WithBranch(c.branch))
	case c.Repo != "":
		opts = append(opts, naming.WithBranch(identity.RepoBranch(c.Repo)))
	}

	scoped, err := naming.ScopedName(context.Background(), c.Name, opts...)
	if err != nil {
		return fmt.Errorf("could not scope name: %w", err)
	}

	logger.Info("scope.name", "name", c.Name, "scoped", scoped)

	_, err = fmt.Fprintln(stdout(c.Stdout), scoped)

	return err
}

func newClassifier(lookup environ.LookupFunc, ciVariable, nameVariable string) *environ.Classifier {
	return &environ.Classifier{
		Lookup:       lookup,
		CIVariable:   ciVariable,
		NameVariable: nameVariable,
	}
}
