package migrate

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/mdxport"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Front matter defaults for migrated posts.
const (
	DefaultLayout            = "@/layouts/ArticleLayout.astro"
	DefaultDescriptionFormat = "A post about %s"
)

// DocumentTemplate builds documents from converted page bodies.
type DocumentTemplate struct {
	// Layout is written verbatim as the layout reference. Empty omits it.
	Layout string

	// DescriptionFormat receives the humanized slug as its only argument.
	DescriptionFormat string
}

// DefaultTemplate returns the template used for blog posts.
func DefaultTemplate() DocumentTemplate {
	return DocumentTemplate{
		Layout:            DefaultLayout,
		DescriptionFormat: DefaultDescriptionFormat,
	}
}

// Build assembles a document for the slug.
func (t DocumentTemplate) Build(slug, sourceURL, body string, date time.Time) *mdxport.Document {
	name := Humanize(slug)

	format := t.DescriptionFormat
	if format == "" {
		format = DefaultDescriptionFormat
	}

	return &mdxport.Document{
		Slug:        slug,
		SourceURL:   sourceURL,
		Title:       TitleCase(name),
		Description: fmt.Sprintf(format, name),
		Date:        date,
		Layout:      t.Layout,
		Body:        body,
	}
}

// Humanize turns a slug into words by replacing hyphens with spaces.
// Underscores are kept so existing posts re-migrate byte for byte.
// Example: 2011-buffalo-river → 2011 buffalo river
func Humanize(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

// TitleCase upper-cases the first letter of every run of letters and
// lower-cases the rest. Any non-letter starts a new run.
// Example: 2011 buffalo_river → 2011 Buffalo_River
func TitleCase(s string) string {
	caser := cases.Title(language.English)

	var b strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}
