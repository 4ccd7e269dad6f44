package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// YAML loads flag defaults from a YAML document. Top level keys apply to
// every command; a key named after a command holds values for that command
// only and wins over the top level.
//
//	log-level: debug
//	scope:
//	  max-length: 40
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	var resolver kong.ResolverFunc = func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if value, ok := section[flag.Name]; ok {
					return value, nil
				}
			}
		}

		value, ok := values[flag.Name]
		if !ok {
			return nil, nil //nolint:nilnil
		}

		if _, isSection := value.(map[string]any); isSection {
			return nil, nil //nolint:nilnil
		}

		return value, nil
	}

	return resolver, nil
}
