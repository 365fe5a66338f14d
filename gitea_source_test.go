package updatecheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const giteaReleases = `[
  {"id": 3, "tag_name": "v2.0.0-rc1", "name": "rc", "html_url": "https://gitea.example.com/owner/app/releases/tag/v2.0.0-rc1", "prerelease": true},
  {"id": 2, "tag_name": "v1.6.0", "name": "draft", "html_url": "https://gitea.example.com/owner/app/releases/tag/v1.6.0", "draft": true},
  {"id": 1, "tag_name": "v1.5.0", "name": "Version 1.5.0", "body": "release notes", "html_url": "https://gitea.example.com/owner/app/releases/tag/v1.5.0", "published_at": "2026-01-02T03:04:05Z"}
]`

func newGiteaTestServer(t *testing.T, releases string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/version", func(w http.ResponseWriter, r *http.Request) {
		t.Error("a check should send a single request to the server")
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/v1/repos/owner/app/releases", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(releases))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestGiteaSourceNeedsBaseURL(t *testing.T) {
	_, err := NewGiteaSource(GiteaConfig{})
	assert.Error(t, err)
}

func TestGiteaTokenIsNotSet(t *testing.T) {
	t.Setenv("GITEA_TOKEN", "")

	if _, err := NewGiteaSource(GiteaConfig{BaseURL: "https://gitea.example.com"}); err != nil {
		t.Error("Failed to initialize Gitea source with empty token")
	}
}

func TestGiteaTokenFromEnv(t *testing.T) {
	t.Setenv("GITEA_TOKEN", "my_token")

	source, err := NewGiteaSource(GiteaConfig{BaseURL: "https://gitea.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "my_token", source.token)
}

func TestGiteaLatestReleaseWithRepositoryID(t *testing.T) {
	source, err := NewGiteaSource(GiteaConfig{BaseURL: "https://gitea.example.com"})
	require.NoError(t, err)

	_, err = source.LatestRelease(context.Background(), NewRepositoryID(11))
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGiteaLatestReleaseSkipsDraftAndPrerelease(t *testing.T) {
	server := newGiteaTestServer(t, giteaReleases)
	source, err := NewGiteaSource(GiteaConfig{BaseURL: server.URL, UserAgent: testUserAgent})
	require.NoError(t, err)

	release, err := source.LatestRelease(context.Background(), ParseSlug("owner/app"))
	require.NoError(t, err)
	assert.Equal(t, "v1.5.0", release.GetTagName())
	assert.Equal(t, "Version 1.5.0", release.GetName())
	assert.Equal(t, "release notes", release.GetReleaseNotes())
	assert.Equal(t, "https://gitea.example.com/owner/app/releases/tag/v1.5.0", release.GetURL())
}

func TestGiteaCheckForUpdates(t *testing.T) {
	server := newGiteaTestServer(t, giteaReleases)
	source, err := NewGiteaSource(GiteaConfig{BaseURL: server.URL, UserAgent: testUserAgent})
	require.NoError(t, err)
	checker := newMockChecker(t, source)

	decision := checker.CheckForUpdates(context.Background(), "1.4.2")
	assert.True(t, decision.HasUpdate)
	assert.Equal(t, "1.5.0", decision.LatestVersion)
	assert.Equal(t, "https://gitea.example.com/owner/app/releases/tag/v1.5.0", decision.DownloadURL)
}

func TestGiteaNoPublishedRelease(t *testing.T) {
	server := newGiteaTestServer(t, `[]`)
	source, err := NewGiteaSource(GiteaConfig{BaseURL: server.URL, UserAgent: testUserAgent})
	require.NoError(t, err)

	_, err = source.LatestRelease(context.Background(), ParseSlug("owner/app"))
	assert.ErrorIs(t, err, ErrReleaseNotFound)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGiteaCheckSendsSingleRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/api/v1/repos/owner/app/releases", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(giteaReleases))
	}))
	t.Cleanup(server.Close)

	source, err := NewGiteaSource(GiteaConfig{BaseURL: server.URL, UserAgent: testUserAgent})
	require.NoError(t, err)

	result := newMockChecker(t, source).Check(context.Background(), "1.4.2")
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, 1, requests)
}

func TestGiteaErrorStatusIsResponseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	source, err := NewGiteaSource(GiteaConfig{BaseURL: server.URL, UserAgent: testUserAgent})
	require.NoError(t, err)

	result := newMockChecker(t, source).Check(context.Background(), "1.4.2")
	assert.Equal(t, OutcomeResponseError, result.Outcome)
	assert.Equal(t, noUpdate("1.4.2"), result.Decision)
}
