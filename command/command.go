// Package command runs subprocesses and collects their output.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// ErrEmptyCommand is returned when no program name is given.
var ErrEmptyCommand = errors.New("command is empty")

// RunFunc runs name with args and returns its standard output.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Runner executes commands in Dir, or the working directory when empty.
type Runner struct {
	Dir    string
	Logger *slog.Logger
}

// Run executes with a zero Runner.
func Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return (&Runner{}).Run(ctx, name, args...)
}

// Run blocks until the command exits or ctx is done. A non-zero exit returns
// an error wrapping *exec.ExitError with the trimmed stderr attached.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyCommand
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.WithGroup("command")

	//nolint:gosec
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	stdout := &bytes.Buffer{}
	stderr := &strings.Builder{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.Debug("command.run", "name", name, "args", args, "dir", r.Dir)

	err := cmd.Run()

	logger.Debug("command.result", "name", name, "args", args, "stdout", stdout.String(), "stderr", stderr.String(), "err", err)

	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("could not run %s: %w: %s", name, err, msg)
		}

		return nil, fmt.Errorf("could not run %s: %w", name, err)
	}

	return stdout.Bytes(), nil
}
