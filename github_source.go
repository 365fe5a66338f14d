package updatecheck

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/google/go-github/v30/github"
	"golang.org/x/oauth2"
)

// DefaultUserAgent is sent to the release providers when no other user agent is configured
const DefaultUserAgent = "go-updatecheck"

// GitHubConfig is an object to pass to NewGitHubSource
type GitHubConfig struct {
	// APIToken represents GitHub API token. If it's not empty, it will be used for authentication of GitHub API
	APIToken string
	// EnterpriseBaseURL is a base URL of GitHub API. If you want to use this library with GitHub Enterprise,
	// please set "https://{your-organization-address}/api/v3/" to this field.
	EnterpriseBaseURL string
	// EnterpriseUploadURL is a URL to upload stuffs to GitHub Enterprise instance. This is often the same as an API base URL.
	// So if this field is not set and EnterpriseBaseURL is set, EnterpriseBaseURL is also set to this field.
	EnterpriseUploadURL string
	// UserAgent identifies your application to the GitHub API (default to DefaultUserAgent)
	UserAgent string
}

// GitHubSource is used to load release information from GitHub
type GitHubSource struct {
	api *github.Client
}

// NewGitHubSource creates a new GitHubSource from a config object.
// It initializes a GitHub API client.
// If you set your API token to the $GITHUB_TOKEN environment variable, the client will use it.
// You can pass an empty GitHubConfig{} to use the default configuration
// The function will return an error if the GitHub Enterprise URLs in the config object cannot be parsed
func NewGitHubSource(config GitHubConfig) (*GitHubSource, error) {
	token := config.APIToken
	if token == "" {
		// try the environment variable
		token = os.Getenv("GITHUB_TOKEN")
	}
	hc := newHTTPClient(token)

	client := github.NewClient(hc)
	if config.EnterpriseBaseURL != "" {
		u := config.EnterpriseUploadURL
		if u == "" {
			u = config.EnterpriseBaseURL
		}
		var err error
		client, err = github.NewEnterpriseClient(config.EnterpriseBaseURL, u, hc)
		if err != nil {
			return nil, fmt.Errorf("cannot parse GitHub enterprise URL: %w", err)
		}
	}

	client.UserAgent = DefaultUserAgent
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}
	return &GitHubSource{
		api: client,
	}, nil
}

// LatestRelease returns the most recent published release (drafts and pre-releases are never returned by GitHub)
func (s *GitHubSource) LatestRelease(ctx context.Context, repository Repository) (SourceRelease, error) {
	owner, repo, err := repository.GetSlug()
	if err != nil {
		return nil, err
	}
	rel, res, err := s.api.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		if res != nil {
			// GitHub answered: either an error status or a body we cannot decode
			log.Printf("API returned an error response: %s", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return nil, err
	}
	if rel == nil {
		return nil, nil
	}
	return NewGitHubRelease(rel), nil
}

func newHTTPClient(token string) *http.Client {
	if token == "" {
		return &http.Client{}
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(context.Background(), src)
}

// Verify interface
var _ Source = &GitHubSource{}
