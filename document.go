package mdxport

import (
	"context"
	"strings"
	"time"
)

// Document is a migrated page ready to be written as MDX.
type Document struct {
	Slug        string    `json:"slug"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Layout      string    `json:"layout"`
	Body        string    `json:"body"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	if strings.ContainsAny(d.Slug, `/\`) {
		return Errorf(EINVALID, "document slug %q must not contain path separators", d.Slug)
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	return nil
}

// SlugFromLink returns the final "/"-delimited segment of a link.
// Example: /site/earl/2011-buffalo-river → 2011-buffalo-river
func SlugFromLink(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}

// WriteStatus describes what a DocumentWriter did with a document.
type WriteStatus string

// Write statuses.
const (
	WriteCreated   WriteStatus = "created"
	WriteUpdated   WriteStatus = "updated"
	WriteUnchanged WriteStatus = "unchanged"
)

// DocumentWriter writes documents to an output location.
type DocumentWriter interface {
	// Ready verifies that the output location exists.
	// Returns ENOTFOUND if it does not.
	Ready(ctx context.Context) error

	// Exists reports whether a document with the slug was already written.
	Exists(ctx context.Context, slug string) (bool, error)

	// WriteDocument writes the document, replacing any previous version.
	WriteDocument(ctx context.Context, doc *Document) (WriteStatus, error)

	// Path returns the file path used for the slug.
	Path(slug string) string
}
