package mdxport

// Selector evaluates a Locator against an HTML page.
//
// Both methods use the first element matching the locator. When nothing
// matches they return an ENOTFOUND error, which callers can tell apart from
// EINVALID errors caused by a malformed page or expression.
type Selector interface {
	// SelectLinks returns the href value of every anchor beneath the located
	// element, in document order. Duplicates are kept.
	SelectLinks(html string, loc Locator) ([]string, error)

	// SelectHTML returns the inner HTML of the located element.
	SelectHTML(html string, loc Locator) (string, error)
}
