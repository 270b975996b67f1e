// Package fs provides file-based storage for link lists and migrated documents.
package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdxport"
	"gopkg.in/yaml.v3"
)

// DefaultExtension is the file extension of written documents.
const DefaultExtension = ".mdx"

// FormatDocument renders a document as YAML front matter followed by a
// blank line and the Markdown body.
//
//	---
//	title: "Page One"
//	description: "A post about page one"
//	postDate: 2024-05-01
//	layout: '@/layouts/ArticleLayout.astro'
//	---
//
//	body
func FormatDocument(doc *mdxport.Document) (string, error) {
	fm := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key, value string, style yaml.Style) {
		fm.Content = append(fm.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: style},
		)
	}
	add("title", doc.Title, yaml.DoubleQuotedStyle)
	add("description", doc.Description, yaml.DoubleQuotedStyle)
	add("postDate", doc.Date.Format("2006-01-02"), 0)
	if doc.Layout != "" {
		add("layout", doc.Layout, yaml.SingleQuotedStyle)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(fm); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(buf.Bytes())
	b.WriteString("---\n\n")
	b.WriteString(doc.Body)
	return b.String(), nil
}

// Ensure Writer implements mdxport.DocumentWriter at compile time.
var _ mdxport.DocumentWriter = (*Writer)(nil)

// Writer writes documents as flat files named <slug><ext> in one directory.
// The directory must already exist; Writer never creates it.
type Writer struct {
	baseDir string
	ext     string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithExtension sets the extension of written files.
// Defaults to DefaultExtension (.mdx) if not specified.
func WithExtension(ext string) WriterOption {
	return func(w *Writer) {
		w.ext = ext
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir, ext: DefaultExtension}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Ready returns ENOTFOUND unless the base directory exists.
func (w *Writer) Ready(ctx context.Context) error {
	info, err := os.Stat(w.baseDir)
	if errors.Is(err, os.ErrNotExist) {
		return mdxport.Errorf(mdxport.ENOTFOUND, "output directory %q does not exist", w.baseDir)
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return mdxport.Errorf(mdxport.ENOTFOUND, "output path %q is not a directory", w.baseDir)
	}
	return nil
}

// Path returns the file path for a slug.
func (w *Writer) Path(slug string) string {
	return filepath.Join(w.baseDir, slug+w.ext)
}

// Exists reports whether a file for the slug is already present.
func (w *Writer) Exists(ctx context.Context, slug string) (bool, error) {
	_, err := os.Stat(w.Path(slug))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// WriteDocument writes the formatted document, overwriting any existing file.
// A file whose content is already identical is left untouched.
func (w *Writer) WriteDocument(ctx context.Context, doc *mdxport.Document) (mdxport.WriteStatus, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	content, err := FormatDocument(doc)
	if err != nil {
		return "", err
	}

	path := w.Path(doc.Slug)
	status := mdxport.WriteCreated
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			return mdxport.WriteUnchanged, nil
		}
		status = mdxport.WriteUpdated
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return status, nil
}
