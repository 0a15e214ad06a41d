// Package http provides an HTTP implementation of sitesearch.ArtifactSource
// for loading the index and configuration artifacts from a deployed site.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mosaic-community/sitesearch"
)

// DefaultTimeout is the default timeout for artifact requests.
const DefaultTimeout = 10 * time.Second

// Ensure ArtifactSource implements sitesearch.ArtifactSource at compile time.
var _ sitesearch.ArtifactSource = (*ArtifactSource)(nil)

// ArtifactSource fetches static artifacts relative to a base URL.
type ArtifactSource struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures an ArtifactSource.
type Option func(*ArtifactSource)

// WithTimeout sets the timeout for artifact requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *ArtifactSource) {
		s.timeout = d
	}
}

// WithClient sets the HTTP client used for requests. The client's own
// timeout applies instead of WithTimeout.
func WithClient(c *http.Client) Option {
	return func(s *ArtifactSource) {
		s.client = c
	}
}

// NewArtifactSource creates an ArtifactSource for artifacts under baseURL.
func NewArtifactSource(baseURL string, opts ...Option) *ArtifactSource {
	s := &ArtifactSource{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// Load fetches the named artifact. A 404 response returns ENOTFOUND; any
// other non-OK status is an error.
func (s *ArtifactSource) Load(ctx context.Context, name string) ([]byte, error) {
	u := s.baseURL + url.PathEscape(strings.TrimPrefix(name, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "artifact %q not found", name)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, u)
	}

	return io.ReadAll(resp.Body)
}
