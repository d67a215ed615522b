package main

import (
	"flag"
	"fmt"
	"strings"
)

const envPrefix = "ALGOVISTA_"

// envName maps a flag name to its environment variable: cache-bytes becomes
// ALGOVISTA_CACHE_BYTES.
func envName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// applyEnv sets every flag that was not given on the command line from its
// environment variable, if present.
func applyEnv(fs *flag.FlagSet, lookup func(string) (string, bool)) error {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var firstErr error
	fs.VisitAll(func(f *flag.Flag) {
		if explicit[f.Name] || firstErr != nil {
			return
		}
		v, ok := lookup(envName(f.Name))
		if !ok {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			firstErr = fmt.Errorf("invalid %s=%q: %w", envName(f.Name), v, err)
		}
	})
	return firstErr
}
