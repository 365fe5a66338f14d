package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/creativeprojects/go-updatecheck"
)

// SplitDomainSlug tries to make sense of the repository string
// and returns a domain name (if present) and a slug.
//
// Example of valid entries:
//
//   - "owner/name"
//   - "github.com/owner/name"
//   - "http://github.com/owner/name"
func SplitDomainSlug(repo string) (domain, slug string, err error) {
	// simple case first => only a slug
	parts := strings.Split(repo, "/")
	if len(parts) == 2 {
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("invalid slug or URL %q", repo)
		}
		return "", repo, nil
	}
	// trim trailing /
	repo = strings.TrimSuffix(repo, "/")

	if !strings.HasPrefix(repo, "http") && !strings.Contains(repo, "://") && !strings.HasPrefix(repo, "/") {
		// add missing scheme
		repo = "https://" + repo
	}

	repoURL, err := url.Parse(repo)
	if err != nil {
		return "", "", err
	}

	// make sure hostname looks like a real domain name
	if !strings.Contains(repoURL.Hostname(), ".") {
		return "", "", fmt.Errorf("invalid domain name %q", repoURL.Hostname())
	}
	domain = repoURL.Scheme + "://" + repoURL.Host
	slug = strings.TrimPrefix(repoURL.Path, "/")

	if slug == "" {
		return "", "", fmt.Errorf("invalid URL %q", repo)
	}
	return domain, slug, nil
}

// GetSource returns the release provider from its type ("github", "gitea", "gitlab" or "http").
// When the type is "auto" or empty, the provider is guessed from the domain name.
// The base URL replaces the domain when it is set (it is mandatory for the "http" type).
func GetSource(sourceType, domain string, config Config) (updatecheck.Source, error) {
	if config.BaseURL != "" {
		domain = config.BaseURL
	}
	if sourceType != "auto" && sourceType != "" {
		return getSourceFromName(sourceType, domain, config)
	}
	return getSourceFromURL(domain, config)
}

func getSourceFromName(name, domain string, config Config) (updatecheck.Source, error) {
	switch name {
	case "gitea":
		return updatecheck.NewGiteaSource(updatecheck.GiteaConfig{BaseURL: domain, UserAgent: config.UserAgent})

	case "gitlab":
		return updatecheck.NewGitLabSource(updatecheck.GitLabConfig{BaseURL: domain, UserAgent: config.UserAgent})

	case "http":
		return updatecheck.NewHttpSource(updatecheck.HttpConfig{BaseURL: domain, Manifest: config.Manifest, UserAgent: config.UserAgent})

	case "github":
		return newGitHubSource(domain, config)

	default:
		return nil, fmt.Errorf("unknown source type %q", name)
	}
}

func getSourceFromURL(domain string, config Config) (updatecheck.Source, error) {
	if strings.Contains(domain, "gitea") {
		return getSourceFromName("gitea", domain, config)
	}
	if strings.Contains(domain, "gitlab") {
		return getSourceFromName("gitlab", domain, config)
	}
	return newGitHubSource(domain, config)
}

func newGitHubSource(domain string, config Config) (*updatecheck.GitHubSource, error) {
	githubConfig := updatecheck.GitHubConfig{UserAgent: config.UserAgent}
	if domain != "" && !strings.HasSuffix(domain, "://github.com") {
		githubConfig.EnterpriseBaseURL = domain
	}
	return updatecheck.NewGitHubSource(githubConfig)
}
