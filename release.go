package updatecheck

import (
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Release represents the latest published release, as reported by the source.
type Release struct {
	// TagName is the version label of the release, usually prefixed with "v"
	TagName string
	// URL is a URL to release page for browsing
	URL string
	// PublishedAt is the time when the release was published
	PublishedAt time.Time
	// Name represents a name of the release
	Name string
	// ReleaseNotes is a release notes of the release
	ReleaseNotes string
	// Prerelease is set to true for alpha, beta or release candidates
	Prerelease bool
	// version is the parsed tag
	version *semver.Version
}

func newRelease(from SourceRelease, version *semver.Version) *Release {
	return &Release{
		TagName:      from.GetTagName(),
		URL:          from.GetURL(),
		PublishedAt:  from.GetPublishedAt(),
		Name:         from.GetName(),
		ReleaseNotes: from.GetReleaseNotes(),
		Prerelease:   from.GetPrerelease(),
		version:      version,
	}
}

// Version is the tag of the release without the "v" prefix, as reported in Decision.LatestVersion.
// Segments after the patch number are kept ("v1.5.0.1" is "1.5.0.1") even though comparisons ignore them.
func (r Release) Version() string {
	if r.version == nil {
		return ""
	}
	return strings.TrimPrefix(r.TagName, "v")
}

// GreaterThan tests if the release is newer than the other version.
// It returns false when the other version cannot be parsed.
func (r Release) GreaterThan(other string) bool {
	result, ok := r.compare(other)
	return ok && result > 0
}

// LessOrEqual tests if the release is older than or the same as the other version.
// It returns false when the other version cannot be parsed.
func (r Release) LessOrEqual(other string) bool {
	result, ok := r.compare(other)
	return ok && result <= 0
}

func (r Release) compare(other string) (int, bool) {
	if r.version == nil {
		return 0, false
	}
	otherVersion, err := ParseVersion(other)
	if err != nil {
		return 0, false
	}
	return Compare(r.version, otherVersion), true
}
