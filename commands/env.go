package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/jtarchie/envname/environ"
)

type Env struct {
	Format       string `default:"text"     enum:"text,json,yaml"         help:"Output format (text, json, yaml)"`
	CIVariable   string `default:"CI"       env:"ENVNAME_CI_VARIABLE"     help:"Variable whose presence marks a CI run"`
	NameVariable string `default:"NODE_ENV" env:"ENVNAME_NAME_VARIABLE"   help:"Variable holding the environment name"`

	Stdout io.Writer `kong:"-"`

	lookup environ.LookupFunc `kong:"-"`
}

type envReport struct {
	CI          bool   `json:"ci"          yaml:"ci"`
	Environment string `json:"environment" yaml:"environment"`
	Production  bool   `json:"production"  yaml:"production"`
}

// Run prints how the current process is classified.
func (c *Env) Run(logger *slog.Logger) error {
	classifier := newClassifier(c.lookup, c.CIVariable, c.NameVariable)

	report := envReport{
		CI:          classifier.IsCI(),
		Environment: classifier.Name(),
		Production:  classifier.IsProduction(),
	}

	logger.WithGroup("env").Debug("env.report", "ci", report.CI, "environment", report.Environment)

	var (
		contents []byte
		err      error
	)

	switch c.Format {
	case "json":
		contents, err = json.Marshal(report)
		contents = append(contents, '\n')
	case "yaml":
		contents, err = yaml.Marshal(report)
	default:
		contents = fmt.Appendf(nil, "ci=%t\nenvironment=%s\nproduction=%t\n", report.CI, report.Environment, report.Production)
	}

	if err != nil {
		return fmt.Errorf("could not format environment: %w", err)
	}

	_, err = stdout(c.Stdout).Write(contents)

	return err
}
