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
	"strings"
	"time"
)

// HttpRelease is the content of a release manifest served by HttpSource
type HttpRelease struct {
	Name         string `json:"name" yaml:"name"`
	TagName      string `json:"tag_name" yaml:"tag_name"`
	URL          string `json:"html_url" yaml:"html_url"`
	Draft        bool   `json:"draft" yaml:"draft"`
	Prerelease   bool   `json:"prerelease" yaml:"prerelease"`
	PublishedAt  string `json:"published_at" yaml:"published_at"`
	ReleaseNotes string `json:"body" yaml:"body"`
}

func (r *HttpRelease) GetTagName() string {
	return r.TagName
}

func (r *HttpRelease) GetDraft() bool {
	return r.Draft
}

func (r *HttpRelease) GetPrerelease() bool {
	return r.Prerelease
}

// publishedAtLayouts are tried in order when reading the publication date of a manifest
var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// GetPublishedAt returns the zero time when the date is missing or in an unknown format:
// the publication date is informational only.
func (r *HttpRelease) GetPublishedAt() time.Time {
	value := strings.TrimSpace(r.PublishedAt)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range publishedAtLayouts {
		if publishedAt, err := time.Parse(layout, value); err == nil {
			return publishedAt
		}
	}
	return time.Time{}
}

func (r *HttpRelease) GetReleaseNotes() string {
	return r.ReleaseNotes
}

func (r *HttpRelease) GetName() string {
	return r.Name
}

func (r *HttpRelease) GetURL() string {
	return r.URL
}

var _ SourceRelease = &HttpRelease{}
