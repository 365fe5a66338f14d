package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/creativeprojects/go-updatecheck"
	"github.com/creativeprojects/go-updatecheck/cmd"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
)

func main() {
	var help, verbose, asJSON, openPage bool
	var configFile string
	var timeout time.Duration
	flags := cmd.Config{}
	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&verbose, "v", false, "Display debugging information")
	flag.BoolVar(&asJSON, "json", false, "Print the decision as JSON")
	flag.BoolVar(&openPage, "open", false, "Open the release page in a browser when an update is available")
	flag.StringVar(&configFile, "config", "", "Load the parameters from a configuration file (.toml, .yaml or .yml)")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Maximum time to wait for the release provider")
	flag.StringVar(&flags.Source, "t", "", "Release provider: \"auto\", \"github\", \"gitea\", \"gitlab\" or \"http\" (default \"auto\")")
	flag.StringVar(&flags.UserAgent, "user-agent", "", "User-Agent sent to the release provider (default \""+updatecheck.DefaultUserAgent+"\")")
	flag.StringVar(&flags.BaseURL, "base-url", "", "Base URL of the release provider")
	flag.StringVar(&flags.Manifest, "manifest", "", "Name of the manifest file for the http provider (default \"latest.json\")")

	flag.Usage = usage
	flag.Parse()

	if help {
		usage()
		os.Exit(cmd.ExitUsage)
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		updatecheck.SetLogger(logrus.StandardLogger())
	}

	config, err := cmd.ResolveConfig(configFile, flags, flag.Args())
	if err == nil {
		var checker *updatecheck.Checker
		checker, err = cmd.NewChecker(config)
		if err == nil {
			os.Exit(check(checker, config.Version, timeout, asJSON, openPage))
		}
	}
	fmt.Fprintln(os.Stderr, err)
	if cmd.ExitCode(err) == cmd.ExitUsage {
		usage()
	}
	os.Exit(cmd.ExitCode(err))
}

func check(checker *updatecheck.Checker, currentVersion string, timeout time.Duration, asJSON, openPage bool) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := checker.Check(ctx, currentVersion)
	if result.Err != nil {
		logrus.Debugf("%s: %s", result.Outcome, result.Err)
	}

	if err := cmd.WriteDecision(os.Stdout, result.Decision, asJSON); err != nil {
		logrus.Warningf("cannot print the decision: %s", err)
	}

	if openPage && result.HasUpdate {
		if err := browser.OpenURL(result.DownloadURL); err != nil {
			logrus.Warningf("cannot open %s: %s", result.DownloadURL, err)
		}
	}
	return cmd.ExitOK
}

func usage() {
	fmt.Fprintln(os.Stderr, `
Usage: check-update [flags] {repo} {current-version}

  check-update tells if a newer release than {current-version} was published.
  {repo} is either "owner/name" or the URL of the repository:
  "github.com/owner/name", "https://gitea.example.com/owner/name"...
  Both arguments can be given in the configuration file instead.

Flags:`)
	flag.PrintDefaults()
}
