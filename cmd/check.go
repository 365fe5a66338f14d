package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/creativeprojects/go-updatecheck"
)

// Exit codes of the check-update command. A failed check is not an error: it prints "no update".
const (
	ExitOK     = 0
	ExitConfig = 1
	ExitUsage  = 2
)

// ErrUsage is returned when the command line doesn't describe a check
var ErrUsage = errors.New("expected a repository and a current version")

// ResolveConfig builds the configuration of a check: the configuration file (if any) is loaded first,
// then the flags and finally the positional arguments {repo} {current-version} override its values.
func ResolveConfig(configFile string, flags Config, args []string) (Config, error) {
	if len(args) > 2 {
		return Config{}, fmt.Errorf("%w: too many arguments", ErrUsage)
	}
	config := DefaultConfig()
	if configFile != "" {
		var err error
		config, err = LoadConfig(configFile)
		if err != nil {
			return config, fmt.Errorf("cannot load configuration from %q: %w", configFile, err)
		}
	}
	if len(args) > 0 {
		flags.Repository = args[0]
	}
	if len(args) > 1 {
		flags.Version = args[1]
	}
	config.Merge(flags)

	if config.Repository == "" || config.Version == "" {
		return config, ErrUsage
	}
	return config, nil
}

// NewChecker creates the checker for the repository of the configuration
func NewChecker(config Config) (*updatecheck.Checker, error) {
	domain, slug, err := SplitDomainSlug(config.Repository)
	if err != nil {
		return nil, err
	}
	source, err := GetSource(config.Source, domain, config)
	if err != nil {
		return nil, err
	}
	return updatecheck.NewChecker(updatecheck.Config{
		Source:     source,
		Repository: updatecheck.ParseSlug(slug),
	})
}

// ExitCode returns the exit code matching an error returned by ResolveConfig or NewChecker
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitConfig
	}
}

// WriteDecision prints the decision as text, or as indented JSON
func WriteDecision(w io.Writer, decision updatecheck.Decision, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(decision)
	}
	_, err := fmt.Fprintf(w, "Current version: %s\nLatest version: %s\n", decision.CurrentVersion, decision.LatestVersion)
	if err != nil {
		return err
	}
	if !decision.HasUpdate {
		_, err = fmt.Fprintln(w, "No update available")
		return err
	}
	_, err = fmt.Fprintf(w, "Update available: %s\n", decision.DownloadURL)
	return err
}
