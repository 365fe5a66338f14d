// Copyright (c) 2024 Mr. Gecko's Media (James Coleman). http://mrgeckosmedia.com/
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package updatecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// DefaultManifest is the name of the file describing the latest release, relative to the repository URL
const DefaultManifest = "latest.json"

// HttpConfig is an object to pass to NewHttpSource
type HttpConfig struct {
	// BaseURL is a base URL of your update server. This parameter has NO default value.
	BaseURL string
	// Manifest is the name of the file describing the latest release (default to DefaultManifest).
	// A file with a ".yaml" or ".yml" extension is decoded as YAML, anything else as JSON.
	Manifest string
	// HTTP Transport Config
	Transport http.RoundTripper
	// Additional headers
	Headers http.Header
	// UserAgent identifies your application to the update server (default to DefaultUserAgent)
	UserAgent string
}

// HttpSource is used to load the latest release information from a static manifest
// served by any http server, at {BaseURL}/{owner}/{repo}/{Manifest}.
// The manifest uses the same field names as the GitHub API (tag_name, html_url, published_at, etc.)
type HttpSource struct {
	baseURL  string
	manifest string
	client   *http.Client
	headers  http.Header
}

// NewHttpSource creates a new HttpSource from a config object.
func NewHttpSource(config HttpConfig) (*HttpSource, error) {
	// Validate Base URL.
	if config.BaseURL == "" {
		return nil, fmt.Errorf("http base url must be set")
	}
	_, perr := url.ParseRequestURI(config.BaseURL)
	if perr != nil {
		return nil, perr
	}

	manifest := config.Manifest
	if manifest == "" {
		manifest = DefaultManifest
	}

	return &HttpSource{
		baseURL:  config.BaseURL,
		manifest: manifest,
		client: &http.Client{
			Transport: newUserAgentTransport(config.UserAgent, config.Transport),
		},
		headers: config.Headers,
	}, nil
}

// LatestRelease downloads and decodes the manifest of the repository
func (s *HttpSource) LatestRelease(ctx context.Context, repository Repository) (SourceRelease, error) {
	owner, repo, err := repository.GetSlug()
	if err != nil {
		return nil, err
	}

	// Make repository URI.
	repoURL, err := url.JoinPath(s.baseURL, owner, repo)
	if err != nil {
		return nil, err
	}
	uri, err := url.JoinPath(repoURL, s.manifest)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP request failed with status code %d", ErrInvalidResponse, res.StatusCode)
	}

	release, err := s.decode(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode %s: %w", ErrInvalidResponse, s.manifest, err)
	}
	release.URL = uriRelative(release.URL, repoURL)
	return release, nil
}

func (s *HttpSource) decode(reader io.Reader) (*HttpRelease, error) {
	release := new(HttpRelease)
	switch strings.ToLower(path.Ext(s.manifest)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(reader).Decode(release); err != nil {
			return nil, err
		}
	default:
		if err := json.NewDecoder(reader).Decode(release); err != nil {
			return nil, err
		}
	}
	return release, nil
}

// uriRelative returns a full URI for a path relative to the repository URL.
func uriRelative(uri, repoURL string) string {
	// If URI is blank, its blank.
	if uri == "" {
		return uri
	}
	// If we're able to parse the URI, a full URI is already defined.
	if _, perr := url.ParseRequestURI(uri); perr == nil && strings.Contains(uri, "://") {
		return uri
	}
	// Join the paths if possible to make a full URI.
	newURL, jerr := url.JoinPath(repoURL, uri)
	if jerr != nil {
		return uri
	}
	return newURL
}

// Verify interface
var _ Source = &HttpSource{}
