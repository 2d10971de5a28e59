// Package htmlsanitize strips dangerous markup from user-generated HTML
// (announcement bodies) before it is stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows common formatting tags but no scripts, event handlers, or
// non-http(s) URL schemes.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with disallowed markup removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
