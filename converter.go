package mdxport

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// Headings are rendered in ATX style ("# Title").
	Convert(html string) (string, error)
}

// Sanitizer cleans an HTML fragment before conversion.
type Sanitizer interface {
	Sanitize(html string) string
}
