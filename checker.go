package updatecheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Checker is responsible for finding out if a newer release than the running version is available.
// It holds no mutable state and can be used concurrently.
type Checker struct {
	source     Source
	repository Repository
}

// NewChecker creates a new checker instance.
// If you don't specify a source in the config object, GitHub will be used
func NewChecker(config Config) (*Checker, error) {
	if config.Repository == nil {
		return nil, ErrInvalidRepository
	}
	if _, err := config.Repository.Get(); err != nil {
		return nil, fmt.Errorf("invalid repository: %w", err)
	}

	source := config.Source
	if source == nil {
		// default source is GitHub
		// an error can only be returned when using GitHub Enterprise URLs
		source, _ = NewGitHubSource(GitHubConfig{})
	}

	return &Checker{
		source:     source,
		repository: config.Repository,
	}, nil
}

// CheckForUpdates compares the latest published release with the current version.
//
// It never fails: any error (network, provider response, unparseable version)
// resolves to a decision without update, where the latest version is the current version.
// Use Check when you need to know why no update was found.
func (c *Checker) CheckForUpdates(ctx context.Context, currentVersion string) Decision {
	return c.Check(ctx, currentVersion).Decision
}

// Check compares the latest published release with the current version,
// and reports how the decision was reached.
func (c *Checker) Check(ctx context.Context, currentVersion string) Result {
	current, err := ParseVersion(currentVersion)
	if err != nil {
		log.Printf("Cannot check for updates: %s", err)
		return failure(currentVersion, OutcomeInvalidInput, err)
	}

	sourceRelease, err := c.source.LatestRelease(ctx, c.repository)
	if err != nil {
		log.Printf("Cannot fetch the latest release: %s", err)
		return failure(currentVersion, classify(err), err)
	}

	release, err := latestRelease(sourceRelease)
	if err != nil {
		log.Printf("Cannot use the latest release: %s", err)
		return failure(currentVersion, OutcomeResponseError, err)
	}
	log.Printf("Successfully fetched the latest release. tag: %s, name: %s, URL: %s", release.TagName, release.Name, release.URL)

	decision := Decision{
		HasUpdate:      Compare(release.version, current) > 0,
		LatestVersion:  strings.TrimPrefix(release.TagName, "v"),
		CurrentVersion: currentVersion,
	}
	if decision.HasUpdate {
		decision.DownloadURL = release.URL
		log.Printf("Version %s is available (current version is %s)", decision.LatestVersion, currentVersion)
	} else {
		log.Printf("Current version %s is the latest. Update is not needed", currentVersion)
	}

	return Result{
		Decision: decision,
		Outcome:  OutcomeSuccess,
		Release:  release,
	}
}

// latestRelease checks the source release is a usable published release, with a semantic version tag.
func latestRelease(from SourceRelease) (*Release, error) {
	if from == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, ErrReleaseNotFound)
	}
	if from.GetDraft() || from.GetPrerelease() {
		return nil, fmt.Errorf("%w: %w: %q is a draft or a pre-release", ErrInvalidResponse, ErrReleaseNotFound, from.GetTagName())
	}
	tag := from.GetTagName()
	if tag == "" {
		return nil, fmt.Errorf("%w: missing tag name", ErrInvalidResponse)
	}
	if from.GetURL() == "" {
		return nil, fmt.Errorf("%w: missing URL for release %q", ErrInvalidResponse, tag)
	}
	version, err := ParseVersion(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return newRelease(from, version), nil
}

func classify(err error) Outcome {
	switch {
	case errors.Is(err, ErrInvalidResponse):
		return OutcomeResponseError
	case errors.Is(err, ErrInvalidSlug),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrIncorrectParameterOwner),
		errors.Is(err, ErrIncorrectParameterRepo):
		return OutcomeInvalidInput
	default:
		return OutcomeTransportError
	}
}

func failure(currentVersion string, outcome Outcome, err error) Result {
	return Result{
		Decision: noUpdate(currentVersion),
		Outcome:  outcome,
		Err:      err,
	}
}
