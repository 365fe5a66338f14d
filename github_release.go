package updatecheck

import (
	"time"

	"github.com/google/go-github/v30/github"
)

type GitHubRelease struct {
	name         string
	tagName      string
	url          string
	draft        bool
	prerelease   bool
	publishedAt  time.Time
	releaseNotes string
}

func NewGitHubRelease(from *github.RepositoryRelease) *GitHubRelease {
	return &GitHubRelease{
		name:         from.GetName(),
		tagName:      from.GetTagName(),
		url:          from.GetHTMLURL(),
		draft:        from.GetDraft(),
		prerelease:   from.GetPrerelease(),
		publishedAt:  from.GetPublishedAt().Time,
		releaseNotes: from.GetBody(),
	}
}

func (r *GitHubRelease) GetTagName() string {
	return r.tagName
}

func (r *GitHubRelease) GetDraft() bool {
	return r.draft
}

func (r *GitHubRelease) GetPrerelease() bool {
	return r.prerelease
}

func (r *GitHubRelease) GetPublishedAt() time.Time {
	return r.publishedAt
}

func (r *GitHubRelease) GetReleaseNotes() string {
	return r.releaseNotes
}

func (r *GitHubRelease) GetName() string {
	return r.name
}

func (r *GitHubRelease) GetURL() string {
	return r.url
}

// Verify interface
var _ SourceRelease = &GitHubRelease{}
