package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdxport"
)

// Ensure LoggingLinkStore implements mdxport.LinkStore.
var _ mdxport.LinkStore = (*LoggingLinkStore)(nil)

// LoggingLinkStore wraps a LinkStore with debug logging.
type LoggingLinkStore struct {
	next   mdxport.LinkStore
	logger *slog.Logger
}

// NewLoggingLinkStore creates a new LoggingLinkStore.
func NewLoggingLinkStore(next mdxport.LinkStore, logger *slog.Logger) *LoggingLinkStore {
	return &LoggingLinkStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the link count.
func (s *LoggingLinkStore) Load(ctx context.Context) (links []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load links",
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the link count.
func (s *LoggingLinkStore) Save(ctx context.Context, links []string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save links",
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, links)
}

// Ensure LoggingDocumentWriter implements mdxport.DocumentWriter.
var _ mdxport.DocumentWriter = (*LoggingDocumentWriter)(nil)

// LoggingDocumentWriter wraps a DocumentWriter with debug logging of writes.
type LoggingDocumentWriter struct {
	next   mdxport.DocumentWriter
	logger *slog.Logger
}

// NewLoggingDocumentWriter creates a new LoggingDocumentWriter.
func NewLoggingDocumentWriter(next mdxport.DocumentWriter, logger *slog.Logger) *LoggingDocumentWriter {
	return &LoggingDocumentWriter{next: next, logger: logger}
}

// Ready delegates to the wrapped writer.
func (w *LoggingDocumentWriter) Ready(ctx context.Context) error {
	return w.next.Ready(ctx)
}

// Exists delegates to the wrapped writer.
func (w *LoggingDocumentWriter) Exists(ctx context.Context, slug string) (bool, error) {
	return w.next.Exists(ctx, slug)
}

// Path delegates to the wrapped writer.
func (w *LoggingDocumentWriter) Path(slug string) string {
	return w.next.Path(slug)
}

// WriteDocument logs the destination path, body size and outcome of each write.
func (w *LoggingDocumentWriter) WriteDocument(ctx context.Context, doc *mdxport.Document) (status mdxport.WriteStatus, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write document",
			"path", w.next.Path(doc.Slug),
			"bytes", len(doc.Body),
			"status", string(status),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, doc)
}
