package updatecheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/xanzy/go-gitlab"
)

// GitLabConfig is an object to pass to NewGitLabSource
type GitLabConfig struct {
	// APIToken represents GitLab API token. If it's not empty, it will be used for authentication for the API
	APIToken string
	// BaseURL is a base URL of your private GitLab instance
	BaseURL string
	// UserAgent identifies your application to the GitLab API (default to DefaultUserAgent)
	UserAgent string
}

// GitLabSource is used to load release information from GitLab
type GitLabSource struct {
	api *gitlab.Client
}

// NewGitLabSource creates a new GitLabSource from a config object.
// It initializes a GitLab API client.
// If you set your API token to the $GITLAB_TOKEN environment variable, the client will use it.
// You can pass an empty GitLabConfig{} to use the default configuration
// The function will return an error if the GitLab Enterprise URLs in the config object cannot be parsed
func NewGitLabSource(config GitLabConfig) (*GitLabSource, error) {
	token := config.APIToken
	if token == "" {
		// try the environment variable
		token = os.Getenv("GITLAB_TOKEN")
	}
	option := make([]gitlab.ClientOptionFunc, 0, 3)
	option = append(option,
		gitlab.WithHTTPClient(&http.Client{}),
		// a single request per check
		gitlab.WithCustomRetry(func(ctx context.Context, resp *http.Response, err error) (bool, error) {
			return false, nil
		}),
	)
	if config.BaseURL != "" {
		option = append(option, gitlab.WithBaseURL(config.BaseURL))
	}
	client, err := gitlab.NewClient(token, option...)
	if err != nil {
		return nil, fmt.Errorf("cannot create GitLab client: %w", err)
	}
	client.UserAgent = DefaultUserAgent
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}
	return &GitLabSource{
		api: client,
	}, nil
}

// LatestRelease returns the most recent release already published.
// GitLab is listing the releases by release date, most recent first.
func (s *GitLabSource) LatestRelease(ctx context.Context, repository Repository) (SourceRelease, error) {
	pid, err := repository.Get()
	if err != nil {
		return nil, err
	}

	rels, res, err := s.api.Releases.ListReleases(pid, nil, gitlab.WithContext(ctx))
	if err != nil {
		if res != nil {
			log.Printf("API returned an error response: %s", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return nil, fmt.Errorf("list releases: %w", err)
	}
	now := time.Now()
	for _, rel := range rels {
		if rel == nil || rel.ReleasedAt == nil || rel.ReleasedAt.After(now) {
			// upcoming release
			continue
		}
		return NewGitLabRelease(rel, s.releaseURL(pid, rel)), nil
	}
	log.Printf("No published release found in %v", pid)
	return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, ErrReleaseNotFound)
}

// releaseURL returns the web page of the release when the project is known by its path,
// otherwise the web page of the tagged commit.
func (s *GitLabSource) releaseURL(pid interface{}, rel *gitlab.Release) string {
	path, ok := pid.(string)
	if !ok {
		return rel.Commit.WebURL
	}
	base := s.api.BaseURL()
	base.Path = strings.TrimSuffix(strings.TrimSuffix(base.Path, "/"), "/api/v4")
	releaseURL, err := url.JoinPath(base.String(), path, "-", "releases", rel.TagName)
	if err != nil {
		return rel.Commit.WebURL
	}
	return releaseURL
}

// Verify interface
var _ Source = &GitLabSource{}
