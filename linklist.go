package mdxport

import "context"

// LinkStore persists the ordered list of links produced by a collect run.
type LinkStore interface {
	// Load returns the stored links in the order they were saved.
	// Returns ENOTFOUND if nothing has been stored yet.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the stored links.
	Save(ctx context.Context, links []string) error
}
