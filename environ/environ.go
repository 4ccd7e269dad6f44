// Package environ reads process environment variables through an explicit
// accessor so callers and tests can substitute the environment.
package environ

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrNotSet is returned when a required variable is absent.
var ErrNotSet = errors.New("has not been set")

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// OS reads the live process environment on every call.
var OS LookupFunc = os.LookupEnv

// Snapshot is a fixed view of an environment.
type Snapshot map[string]string

// Capture copies the current process environment.
func Capture() Snapshot {
	return FromPairs(os.Environ())
}

// FromPairs builds a snapshot from KEY=VALUE strings.
// Entries without an "=" are ignored; later keys win.
func FromPairs(pairs []string) Snapshot {
	snapshot := make(Snapshot, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}

		snapshot[key] = value
	}

	return snapshot
}

func (s Snapshot) Lookup(key string) (string, bool) {
	value, ok := s[key]

	return value, ok
}

// Keys returns the variable names in sorted order.
func (s Snapshot) Keys() []string {
	keys := lo.Keys(map[string]string(s))
	slices.Sort(keys)

	return keys
}

// Get returns the value of name, failing when it is not set.
// A variable set to the empty string counts as set.
func Get(lookup LookupFunc, name string) (string, error) {
	value, ok := lookup(name)
	if !ok {
		return "", fmt.Errorf("environment variable %s %w", name, ErrNotSet)
	}

	return value, nil
}

// GetOr returns the value of name, or fallback when it is not set.
func GetOr(lookup LookupFunc, name, fallback string) string {
	value, ok := lookup(name)
	if !ok {
		return fallback
	}

	return value
}

// KeyName converts a flag style key into an environment variable name,
// e.g. "my-env-var" becomes "MY_ENV_VAR".
func KeyName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
