package updatecheck

import (
	"context"
)

// MockSource is a Source in memory used for unit tests
type MockSource struct {
	release SourceRelease
	err     error
	calls   int
}

// NewMockSource instantiates a new MockSource returning the release, or the error if not nil
func NewMockSource(release SourceRelease, err error) *MockSource {
	return &MockSource{
		release: release,
		err:     err,
	}
}

// LatestRelease returns the release or the error given at creation
func (s *MockSource) LatestRelease(ctx context.Context, repository Repository) (SourceRelease, error) {
	s.calls++
	if _, _, err := repository.GetSlug(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.release, nil
}

// Verify interface
var _ Source = &MockSource{}

func mockRelease(tag string) *HttpRelease {
	return &HttpRelease{
		Name:         tag,
		TagName:      tag,
		URL:          "https://example.com/releases/" + tag,
		PublishedAt:  "2026-01-02T03:04:05Z",
		ReleaseNotes: "release " + tag,
	}
}
