package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

func validate(command any) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(command)
	if err != nil {
		return fmt.Errorf("could not validate arguments: %w", err)
	}

	return nil
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
