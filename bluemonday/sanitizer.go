// Package bluemonday implements mdxport.Sanitizer with a bluemonday policy.
package bluemonday

import (
	"github.com/fwojciec/mdxport"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements mdxport.Sanitizer at compile time.
var _ mdxport.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips scripts, styles, event handlers and other markup that
// has no place in a migrated post. It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer using bluemonday's user-generated-content policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns the cleaned HTML fragment.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
