package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jtarchie/envname/commands"
	"github.com/lmittmann/tint"
)

type CLI struct {
	Scope   commands.Scope   `cmd:"" help:"Scope a name to the CI environment or the local user and branch"`
	Shorten commands.Shorten `cmd:"" help:"Shorten a string, appending a digest of the truncated part"`
	Env     commands.Env     `cmd:"" help:"Show how the current environment is classified"`

	Config    kong.ConfigFlag `help:"Load defaults from a YAML file"                   type:"existingfile"`
	LogLevel  slog.Level      `default:"warn"                                          help:"Set the log level (debug, info, warn, error)"`
	AddSource bool            `help:"Add source code location to log messages"`
	LogFormat string          `default:"text"                                          enum:"text,json"                                    help:"Set the log format (text, json)"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("envname"),
		kong.Description("Deterministic names scoped to CI or the local developer."),
		kong.Configuration(commands.YAML, ".envname.yaml", "~/.config/envname.yaml"),
	)

	if cli.LogFormat == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     cli.LogLevel,
			AddSource: cli.AddSource,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:     cli.LogLevel,
			AddSource: cli.AddSource,
		})))
	}

	err := ctx.Run(slog.Default())
	ctx.FatalIfErrorf(err)
}
