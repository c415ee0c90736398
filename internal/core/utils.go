package core

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// SanitizeURL strips userinfo from a URL so credentials never reach logs or
// error messages. Unparseable input is returned as-is.
func SanitizeURL(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.User != nil {
		parsed.User = nil
		return parsed.String()
	}
	return rawURL
}

// URLBasename returns the last path segment of rawURL, ignoring query and
// fragment. It is the file name a download is cached under.
func URLBasename(rawURL string) string {
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		return path.Base(parsed.Path)
	}
	return path.Base(rawURL)
}

// Pluralize returns the singular or plural form based on count.
// Examples:
//
//	Pluralize(1, "package", "packages") => "1 package"
//	Pluralize(2, "package", "packages") => "2 packages"
//	Pluralize(0, "package", "packages") => "0 packages"
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
