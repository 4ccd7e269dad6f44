package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jtarchie/envname/shorten"
)

type Shorten struct {
	Input     string `arg:""       help:"String to shorten"`
	MaxLength int    `default:"8"  help:"Maximum length before a digest is appended" validate:"gte=0"`
	Separator string `default:"-"  help:"Separator between the truncated string and the digest"`

	Stdout io.Writer `kong:"-"`
}

func (c *Shorten) Run(logger *slog.Logger) error {
	err := validate(c)
	if err != nil {
		return err
	}

	result := shorten.ShortButUnique(c.Input, c.MaxLength, c.Separator)
	logger.WithGroup("shorten").Debug("shorten.result", "input", c.Input, "result", result)

	_, err = fmt.Fprintln(stdout(c.Stdout), result)

	return err
}
