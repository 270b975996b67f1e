package mdxport

import "context"

// Fetcher retrieves the HTML of a page.
type Fetcher interface {
	// Fetch requests the URL and returns the response body as HTML.
	// Transport errors and non-success statuses are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
