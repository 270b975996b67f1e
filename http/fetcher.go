// Package http provides a plain HTTP implementation of mdxport.Fetcher.
//
// It targets hosted sites such as Google Sites, whose pages arrive fully
// rendered from the server: the navigation tree and the post body are both in
// the initial HTML, so no script execution is needed. Pages that build their
// content in the browser need the rod fetcher instead.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/mdxport"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements mdxport.Fetcher at compile time.
var _ mdxport.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with a single GET request per page.
// It sends no headers beyond the http.Client defaults and does not retry.
// Redirects are followed to the Location the server sends, so a landing URL
// such as ".../earl-atnips-place?authuser=0" resolves to its final page.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// A zero or negative duration keeps DefaultFetchTimeout (10s).
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch returns the body of the final response as HTML.
// A final status outside 2xx is an error naming the status and URL, and a URL
// that cannot form a request is EINVALID.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", mdxport.Errorf(mdxport.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body of %s: %w", url, err)
	}

	return string(body), nil
}

// Timeout returns the per-request timeout.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Close is a no-op; http.Client needs no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
