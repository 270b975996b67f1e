package mock

import "github.com/fwojciec/mdxport"

var _ mdxport.Selector = (*Selector)(nil)

// Selector is a mock implementation of mdxport.Selector.
type Selector struct {
	SelectLinksFn func(html string, loc mdxport.Locator) ([]string, error)
	SelectHTMLFn  func(html string, loc mdxport.Locator) (string, error)
}

func (s *Selector) SelectLinks(html string, loc mdxport.Locator) ([]string, error) {
	return s.SelectLinksFn(html, loc)
}

func (s *Selector) SelectHTML(html string, loc mdxport.Locator) (string, error) {
	return s.SelectHTMLFn(html, loc)
}
