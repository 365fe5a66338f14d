package updatecheck

import (
	"time"

	"code.gitea.io/sdk/gitea"
)

type GiteaRelease struct {
	name         string
	tagName      string
	url          string
	draft        bool
	prerelease   bool
	publishedAt  time.Time
	releaseNotes string
}

func NewGiteaRelease(from *gitea.Release) *GiteaRelease {
	return &GiteaRelease{
		name:         from.Title,
		tagName:      from.TagName,
		url:          from.HTMLURL,
		publishedAt:  from.PublishedAt,
		releaseNotes: from.Note,
		draft:        from.IsDraft,
		prerelease:   from.IsPrerelease,
	}
}

func (r *GiteaRelease) GetTagName() string {
	return r.tagName
}

func (r *GiteaRelease) GetDraft() bool {
	return r.draft
}

func (r *GiteaRelease) GetPrerelease() bool {
	return r.prerelease
}

func (r *GiteaRelease) GetPublishedAt() time.Time {
	return r.publishedAt
}

func (r *GiteaRelease) GetReleaseNotes() string {
	return r.releaseNotes
}

func (r *GiteaRelease) GetName() string {
	return r.name
}

func (r *GiteaRelease) GetURL() string {
	return r.url
}

// Verify interface
var _ SourceRelease = &GiteaRelease{}
