// Package goquery implements mdxport.Selector on top of goquery. XPath
// locators are evaluated with htmlquery against the same parsed tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/mdxport"
	"golang.org/x/net/html"
)

// Ensure Selector implements mdxport.Selector at compile time.
var _ mdxport.Selector = (*Selector)(nil)

// Selector locates elements by XPath or CSS and reads links or markup from them.
type Selector struct{}

// NewSelector creates a new Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// SelectLinks returns the href of every descendant anchor of the located element.
// Anchors without an href attribute are ignored; empty hrefs are kept.
func (s *Selector) SelectLinks(htmlContent string, loc mdxport.Locator) ([]string, error) {
	sel, err := s.locate(htmlContent, loc)
	if err != nil {
		return nil, err
	}

	links := []string{}
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			links = append(links, href)
		}
	})
	return links, nil
}

// SelectHTML returns the inner HTML of the located element.
func (s *Selector) SelectHTML(htmlContent string, loc mdxport.Locator) (string, error) {
	sel, err := s.locate(htmlContent, loc)
	if err != nil {
		return "", err
	}

	inner, err := sel.Html()
	if err != nil {
		return "", mdxport.Errorf(mdxport.EINTERNAL, "failed to render %s: %v", loc, err)
	}
	return inner, nil
}

// locate parses the page and returns a selection holding the first match.
func (s *Selector) locate(htmlContent string, loc mdxport.Locator) (*goquery.Selection, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, mdxport.Errorf(mdxport.EINVALID, "failed to parse HTML: %v", err)
	}

	switch loc.Kind {
	case mdxport.LocatorXPath:
		return locateXPath(doc, loc)
	default:
		return locateCSS(doc, loc)
	}
}

func locateXPath(doc *goquery.Document, loc mdxport.Locator) (*goquery.Selection, error) {
	expr, err := xpath.Compile(loc.Expr)
	if err != nil {
		return nil, mdxport.Errorf(mdxport.EINVALID, "invalid XPath %q: %v", loc.Expr, err)
	}

	node := htmlquery.QuerySelector(doc.Nodes[0], expr)
	if node == nil {
		return nil, mdxport.Errorf(mdxport.ENOTFOUND, "element with XPath %q not found", loc.Expr)
	}
	// Attribute matches come back as detached synthetic nodes.
	if node.Type != html.ElementNode || node.Parent == nil {
		return nil, mdxport.Errorf(mdxport.EINVALID, "XPath %q must select an element", loc.Expr)
	}

	return doc.FindNodes(node), nil
}

func locateCSS(doc *goquery.Document, loc mdxport.Locator) (*goquery.Selection, error) {
	matcher, err := cascadia.Compile(loc.Expr)
	if err != nil {
		return nil, mdxport.Errorf(mdxport.EINVALID, "invalid CSS selector %q: %v", loc.Expr, err)
	}

	sel := doc.FindMatcher(matcher).First()
	if sel.Length() == 0 {
		return nil, mdxport.Errorf(mdxport.ENOTFOUND, "element with selector %q not found", loc.Expr)
	}
	return sel, nil
}
