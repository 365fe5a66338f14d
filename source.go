package updatecheck

import (
	"context"
	"time"
)

// SourceRelease is the release metadata as returned by a Source
type SourceRelease interface {
	GetTagName() string
	GetDraft() bool
	GetPrerelease() bool
	GetPublishedAt() time.Time
	GetReleaseNotes() string
	GetName() string
	GetURL() string
}

// Source interface to load the latest release from (GitHubSource for example).
//
// When the provider answered but the answer cannot be used as a release
// (error status, undecodable body), the returned error wraps ErrInvalidResponse.
// Any other error is considered a transport error.
type Source interface {
	LatestRelease(ctx context.Context, repository Repository) (SourceRelease, error)
}
