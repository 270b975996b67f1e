// Package migrate orchestrates the two migration steps: collecting the links
// of a navigation subtree, then converting each linked page into a document.
package migrate

import (
	"context"
	"fmt"

	"github.com/fwojciec/mdxport"
)

// Collector gathers the links beneath one element of a page.
type Collector struct {
	Fetcher  mdxport.Fetcher
	Selector mdxport.Selector
	Links    mdxport.LinkStore
}

// CollectResult holds the outcome of a collect run.
type CollectResult struct {
	Links []string

	// Saved is true when the links were persisted. Empty results are never saved.
	Saved bool
}

// Collect fetches the page and returns every href beneath the first element
// matching loc, in document order. A locator that matches nothing yields an
// ENOTFOUND error.
func (c *Collector) Collect(ctx context.Context, pageURL string, loc mdxport.Locator) ([]string, error) {
	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	links, err := c.Selector.SelectLinks(html, loc)
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Run collects the links and saves them if there are any. Collection
// failures are returned alongside an empty result so callers can report
// them without treating the run as fatal; only a failed save is fatal.
func (c *Collector) Run(ctx context.Context, pageURL string, loc mdxport.Locator) (*CollectResult, error) {
	links, err := c.Collect(ctx, pageURL, loc)
	if err != nil {
		return &CollectResult{Links: []string{}}, err
	}

	result := &CollectResult{Links: links}
	if len(links) == 0 {
		return result, nil
	}

	if err := c.Links.Save(ctx, links); err != nil {
		return result, &SaveError{Err: err}
	}
	result.Saved = true
	return result, nil
}

// SaveError reports that collected links could not be persisted.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving links: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
