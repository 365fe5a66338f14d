package updatecheck

import "net/http"

// userAgentTransport sets the User-Agent header of every outgoing request
type userAgentTransport struct {
	userAgent string
	next      http.RoundTripper
}

func newUserAgentTransport(userAgent string, next http.RoundTripper) *userAgentTransport {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if next == nil {
		next = http.DefaultTransport
	}
	return &userAgentTransport{
		userAgent: userAgent,
		next:      next,
	}
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// a RoundTripper must not modify the original request
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}

// Verify interface
var _ http.RoundTripper = &userAgentTransport{}
