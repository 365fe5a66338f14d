package updatecheck

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"code.gitea.io/sdk/gitea"
)

// GiteaConfig is an object to pass to NewGiteaSource
type GiteaConfig struct {
	// APIToken represents Gitea API token. If it's not empty, it will be used for authentication for the API
	APIToken string
	// BaseURL is a base URL of your gitea instance. This parameter has NO default value.
	BaseURL string
	// UserAgent identifies your application to the Gitea API (default to DefaultUserAgent)
	UserAgent string
}

// GiteaSource is used to load release information from Gitea
type GiteaSource struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewGiteaSource creates a new GiteaSource from a config object.
// If you set your API token to the $GITEA_TOKEN environment variable, the client will use it.
// The Gitea API client is created for each request, to carry its context.
func NewGiteaSource(config GiteaConfig) (*GiteaSource, error) {
	token := config.APIToken
	if token == "" {
		// try the environment variable
		token = os.Getenv("GITEA_TOKEN")
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("gitea base url must be set")
	}
	return &GiteaSource{
		baseURL:    config.BaseURL,
		token:      token,
		httpClient: &http.Client{
			Transport: newUserAgentTransport(config.UserAgent, nil),
		},
	}, nil
}

// LatestRelease returns the most recent release which is neither a draft nor a pre-release.
// Gitea is listing the releases from the most recent first.
func (s *GiteaSource) LatestRelease(ctx context.Context, repository Repository) (SourceRelease, error) {
	owner, repo, err := repository.GetSlug()
	if err != nil {
		return nil, err
	}

	client, err := gitea.NewClient(s.baseURL,
		gitea.SetContext(ctx),
		gitea.SetToken(s.token),
		gitea.SetHTTPClient(s.httpClient),
		// releases are listed without asking the server for its version first
		gitea.SetGiteaVersion(""),
	)
	if err != nil {
		return nil, fmt.Errorf("error connecting to gitea: %w", err)
	}

	rels, res, err := client.ListReleases(owner, repo, gitea.ListReleasesOptions{})
	if err != nil {
		if res != nil {
			log.Printf("API returned an error response: %s", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return nil, err
	}
	for _, rel := range rels {
		if rel == nil || rel.IsDraft || rel.IsPrerelease {
			continue
		}
		return NewGiteaRelease(rel), nil
	}
	log.Printf("No published release found in %s/%s", owner, repo)
	return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, ErrReleaseNotFound)
}

// Verify interface
var _ Source = &GiteaSource{}
