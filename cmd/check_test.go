package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/creativeprojects/go-updatecheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPriority(t *testing.T) {
	configFile := writeConfigFile(t, "updatecheck.yaml", `
source: gitea
repository: https://gitea.example.com/owner/app
version: 1.0.0
user-agent: from-file
`)

	fixtures := []struct {
		name     string
		flags    Config
		args     []string
		expected Config
	}{
		{
			name:     "file only",
			expected: Config{Source: "gitea", Repository: "https://gitea.example.com/owner/app", Version: "1.0.0", UserAgent: "from-file"},
		},
		{
			name:     "flags override file",
			flags:    Config{Source: "http", UserAgent: "from-flag", BaseURL: "https://downloads.example.com"},
			expected: Config{Source: "http", Repository: "https://gitea.example.com/owner/app", Version: "1.0.0", UserAgent: "from-flag", BaseURL: "https://downloads.example.com"},
		},
		{
			name:     "arguments override file",
			args:     []string{"owner/other", "2.0.0"},
			expected: Config{Source: "gitea", Repository: "owner/other", Version: "2.0.0", UserAgent: "from-file"},
		},
		{
			name:     "only the repository as argument",
			args:     []string{"owner/other"},
			expected: Config{Source: "gitea", Repository: "owner/other", Version: "1.0.0", UserAgent: "from-file"},
		},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			config, err := ResolveConfig(configFile, fixture.flags, fixture.args)
			require.NoError(t, err)
			assert.Equal(t, fixture.expected, config)
		})
	}
}

func TestResolveConfigWithoutFile(t *testing.T) {
	config, err := ResolveConfig("", Config{}, []string{"owner/app", "1.4.0"})
	require.NoError(t, err)
	assert.Equal(t, Config{Source: "auto", Repository: "owner/app", Version: "1.4.0"}, config)
}

func TestResolveConfigErrors(t *testing.T) {
	fixtures := []struct {
		name       string
		configFile string
		args       []string
		exitCode   int
	}{
		{"no argument", "", nil, ExitUsage},
		{"missing version", "", []string{"owner/app"}, ExitUsage},
		{"too many arguments", "", []string{"owner/app", "1.0.0", "extra"}, ExitUsage},
		{"unsupported config file", writeConfigFile(t, "updatecheck.ini", "version=1.0.0"), []string{"owner/app", "1.0.0"}, ExitConfig},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			_, err := ResolveConfig(fixture.configFile, Config{}, fixture.args)
			assert.Error(t, err)
			assert.Equal(t, fixture.exitCode, ExitCode(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(ErrUsage))
	assert.Equal(t, ExitConfig, ExitCode(errors.New("unknown source type")))
}

func TestNewCheckerErrors(t *testing.T) {
	fixtures := []Config{
		{Source: "auto", Repository: "github.com"},
		{Source: "svn", Repository: "owner/app"},
		{Source: "http", Repository: "owner/app"},
	}
	for _, config := range fixtures {
		t.Run(config.Source+" "+config.Repository, func(t *testing.T) {
			_, err := NewChecker(config)
			assert.Error(t, err)
			assert.Equal(t, ExitConfig, ExitCode(err))
		})
	}
}

func TestCheckWithHttpSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repo/owner/app/latest.json", r.URL.Path)
		assert.Equal(t, "Clinical-Transcription-App", r.UserAgent())
		_, _ = w.Write([]byte(`{"tag_name": "v1.5.0", "html_url": "https://downloads.example.com/app/1.5.0"}`))
	}))
	t.Cleanup(server.Close)

	configFile := writeConfigFile(t, "updatecheck.toml", `
source = "http"
base-url = "`+server.URL+`/repo"
user-agent = "Clinical-Transcription-App"
`)
	config, err := ResolveConfig(configFile, Config{}, []string{"owner/app", "1.4.0"})
	require.NoError(t, err)

	checker, err := NewChecker(config)
	require.NoError(t, err)

	decision := checker.CheckForUpdates(context.Background(), config.Version)
	assert.Equal(t, updatecheck.Decision{
		HasUpdate:      true,
		LatestVersion:  "1.5.0",
		CurrentVersion: "1.4.0",
		DownloadURL:    "https://downloads.example.com/app/1.5.0",
	}, decision)
}

func TestWriteDecision(t *testing.T) {
	update := updatecheck.Decision{HasUpdate: true, LatestVersion: "1.5.0", CurrentVersion: "1.4.0", DownloadURL: "https://example.com/releases/v1.5.0"}
	noUpdate := updatecheck.Decision{LatestVersion: "1.4.0", CurrentVersion: "1.4.0"}

	fixtures := []struct {
		name     string
		decision updatecheck.Decision
		asJSON   bool
		expected string
	}{
		{"update", update, false, "Current version: 1.4.0\nLatest version: 1.5.0\nUpdate available: https://example.com/releases/v1.5.0\n"},
		{"no update", noUpdate, false, "Current version: 1.4.0\nLatest version: 1.4.0\nNo update available\n"},
		{"update as JSON", update, true, `{
  "hasUpdate": true,
  "latestVersion": "1.5.0",
  "currentVersion": "1.4.0",
  "downloadUrl": "https://example.com/releases/v1.5.0"
}
`},
		{"no update as JSON", noUpdate, true, `{
  "hasUpdate": false,
  "latestVersion": "1.4.0",
  "currentVersion": "1.4.0"
}
`},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			require.NoError(t, WriteDecision(buffer, fixture.decision, fixture.asJSON))
			assert.Equal(t, fixture.expected, buffer.String())
		})
	}
}
