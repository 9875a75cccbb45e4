// Package urlcheck decides whether a string is a usable absolute URL.
package urlcheck

import (
	"net/url"
	"strings"
)

// IsValid reports whether s parses as an absolute URL with a scheme and a
// host. Surrounding whitespace makes the value invalid.
func IsValid(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
