package mock

import (
	"context"

	"github.com/fwojciec/mdxport"
)

var _ mdxport.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of mdxport.DocumentWriter.
type DocumentWriter struct {
	ReadyFn         func(ctx context.Context) error
	ExistsFn        func(ctx context.Context, slug string) (bool, error)
	WriteDocumentFn func(ctx context.Context, doc *mdxport.Document) (mdxport.WriteStatus, error)
	PathFn          func(slug string) string
}

func (w *DocumentWriter) Ready(ctx context.Context) error {
	return w.ReadyFn(ctx)
}

func (w *DocumentWriter) Exists(ctx context.Context, slug string) (bool, error) {
	return w.ExistsFn(ctx, slug)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *mdxport.Document) (mdxport.WriteStatus, error) {
	return w.WriteDocumentFn(ctx, doc)
}

func (w *DocumentWriter) Path(slug string) string {
	return w.PathFn(slug)
}
