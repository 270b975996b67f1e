package migrate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/mdxport"
)

// Migrator converts every collected link into a document.
// Links are processed one at a time in list order.
type Migrator struct {
	Fetcher   mdxport.Fetcher
	Selector  mdxport.Selector
	Sanitizer mdxport.Sanitizer // optional
	Converter mdxport.Converter
	Links     mdxport.LinkStore
	Writer    mdxport.DocumentWriter
	Throttle  mdxport.Throttle // optional
	Template  DocumentTemplate

	// SkipExisting skips links whose output file already exists, without
	// fetching them. By default existing files are overwritten.
	SkipExisting bool

	// Now returns the date stamped into front matter. Defaults to time.Now.
	Now func() time.Time
}

// MigrateResult holds the outcome of a migrate run.
type MigrateResult struct {
	Total   int
	Written int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a migrate run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Link      string
	URL       string
	Path      string
	Status    mdxport.WriteStatus
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressFetching
	ProgressWritten
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting migrate progress.
type ProgressFunc func(event ProgressEvent)

// Run loads the link list and migrates each link against baseURL.
//
// A missing link list or output directory aborts the run before any page is
// fetched. Every other failure only affects its own link: it is reported
// through progress and counted in the result, and the run moves on.
// Cancelling ctx stops the run between links.
func (m *Migrator) Run(ctx context.Context, baseURL string, loc mdxport.Locator, progress ProgressFunc) (*MigrateResult, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	links, err := m.Links.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := m.Writer.Ready(ctx); err != nil {
		return nil, err
	}

	result := &MigrateResult{Total: len(links)}
	progress(ProgressEvent{Type: ProgressStarted, Total: result.Total})

	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		event := m.migrateLink(ctx, baseURL, link, loc, progress)
		if event.Type == ProgressFailed && ctx.Err() != nil {
			return result, ctx.Err()
		}

		switch event.Type {
		case ProgressWritten:
			result.Written++
		case ProgressSkipped:
			result.Skipped++
		default:
			result.Failed++
		}

		event.Completed = i + 1
		event.Total = result.Total
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: result.Total, Total: result.Total})
	return result, nil
}

// migrateLink processes a single link and returns its terminal event.
func (m *Migrator) migrateLink(ctx context.Context, baseURL, link string, loc mdxport.Locator, progress ProgressFunc) ProgressEvent {
	fullURL := baseURL + link
	slug := mdxport.SlugFromLink(link)
	event := ProgressEvent{Link: link, URL: fullURL, Path: m.Writer.Path(slug)}

	fail := func(err error) ProgressEvent {
		event.Type = ProgressFailed
		event.Error = err
		return event
	}

	if m.SkipExisting {
		exists, err := m.Writer.Exists(ctx, slug)
		if err != nil {
			return fail(err)
		}
		if exists {
			event.Type = ProgressSkipped
			return event
		}
	}

	if m.Throttle != nil {
		if err := m.Throttle.Wait(ctx); err != nil {
			return fail(err)
		}
	}

	progress(ProgressEvent{Type: ProgressFetching, Link: link, URL: fullURL})
	html, err := m.Fetcher.Fetch(ctx, fullURL)
	if err != nil {
		return fail(fmt.Errorf("fetching %s: %w", fullURL, err))
	}

	content, err := m.Selector.SelectHTML(html, loc)
	if err != nil {
		if mdxport.ErrorCode(err) == mdxport.ENOTFOUND {
			return fail(mdxport.Errorf(mdxport.ENOTFOUND, "content element not found for %s", fullURL))
		}
		return fail(err)
	}

	if m.Sanitizer != nil {
		content = m.Sanitizer.Sanitize(content)
	}

	body, err := m.Converter.Convert(content)
	if err != nil {
		return fail(fmt.Errorf("converting %s: %w", fullURL, err))
	}

	doc := m.Template.Build(slug, fullURL, strings.TrimLeft(body, "\n"), m.now())
	status, err := m.Writer.WriteDocument(ctx, doc)
	if err != nil {
		return fail(fmt.Errorf("writing %s: %w", event.Path, err))
	}

	event.Type = ProgressWritten
	event.Status = status
	return event
}

func (m *Migrator) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}
