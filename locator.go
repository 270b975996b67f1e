package mdxport

import (
	"fmt"
	"strings"
)

// LocatorKind identifies the expression language of a Locator.
type LocatorKind string

// Supported locator kinds.
const (
	LocatorXPath LocatorKind = "xpath"
	LocatorCSS   LocatorKind = "css"
)

// Locator addresses a single element in an HTML page.
// Only the first element matching Expr is ever used.
type Locator struct {
	Kind LocatorKind
	Expr string
}

// XPath returns a Locator for an XPath expression.
func XPath(expr string) Locator {
	return Locator{Kind: LocatorXPath, Expr: expr}
}

// CSS returns a Locator for a CSS selector.
func CSS(expr string) Locator {
	return Locator{Kind: LocatorCSS, Expr: expr}
}

// ParseLocator parses a locator from its textual form.
//
// An explicit "xpath:" or "css:" prefix selects the kind. Without a prefix,
// expressions starting with "/", "(", "./" or "..", and the bare context
// node ".", are XPath. Anything else, class selectors like ".post" included,
// is treated as a CSS selector.
func ParseLocator(s string) (Locator, error) {
	s = strings.TrimSpace(s)

	var loc Locator
	switch {
	case strings.HasPrefix(s, "xpath:"):
		loc = XPath(strings.TrimSpace(strings.TrimPrefix(s, "xpath:")))
	case strings.HasPrefix(s, "css:"):
		loc = CSS(strings.TrimSpace(strings.TrimPrefix(s, "css:")))
	case looksLikeXPath(s):
		loc = XPath(s)
	default:
		loc = CSS(s)
	}

	if err := loc.Validate(); err != nil {
		return Locator{}, err
	}
	return loc, nil
}

func looksLikeXPath(s string) bool {
	if s == "." {
		return true
	}
	for _, prefix := range []string{"/", "(", "./", ".."} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Validate returns an error if the locator has no expression or an unknown kind.
// It does not check the expression syntax; that is up to the Selector.
func (l Locator) Validate() error {
	if l.Expr == "" {
		return Errorf(EINVALID, "locator expression required")
	}
	switch l.Kind {
	case LocatorXPath, LocatorCSS:
		return nil
	default:
		return Errorf(EINVALID, "unknown locator kind %q", l.Kind)
	}
}

// String returns the locator in the prefixed form accepted by ParseLocator.
func (l Locator) String() string {
	return fmt.Sprintf("%s:%s", l.Kind, l.Expr)
}
