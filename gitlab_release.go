package updatecheck

import (
	"time"

	"github.com/xanzy/go-gitlab"
)

type GitLabRelease struct {
	name        string
	tagName     string
	url         string
	publishedAt time.Time
	description string
}

func NewGitLabRelease(from *gitlab.Release, url string) *GitLabRelease {
	release := &GitLabRelease{
		name:        from.Name,
		tagName:     from.TagName,
		url:         url,
		description: from.Description,
	}
	if from.ReleasedAt != nil {
		release.publishedAt = *from.ReleasedAt
	}
	return release
}

func (r *GitLabRelease) GetTagName() string {
	return r.tagName
}

// GetDraft always returns false: there's no draft release on GitLab
func (r *GitLabRelease) GetDraft() bool {
	return false
}

// GetPrerelease always returns false: there's no pre-release on GitLab
func (r *GitLabRelease) GetPrerelease() bool {
	return false
}

func (r *GitLabRelease) GetPublishedAt() time.Time {
	return r.publishedAt
}

func (r *GitLabRelease) GetReleaseNotes() string {
	return r.description
}

func (r *GitLabRelease) GetName() string {
	return r.name
}

func (r *GitLabRelease) GetURL() string {
	return r.url
}

// Verify interface
var _ SourceRelease = &GitLabRelease{}
