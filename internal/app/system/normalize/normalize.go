// Package normalize canonicalizes user-supplied identifying strings before
// they reach the database, so index lookups behave case-insensitively.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Chapter canonicalizes a chapter name tag. Chapters are matched by exact
// string, so the tag is trimmed but case is preserved for display.
func Chapter(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role string for enum comparison.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
