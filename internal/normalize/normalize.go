// Package normalize holds the text canonicalization shared by the extraction
// pipeline and the duplicate guard. Matching is deliberately exact after
// canonicalization: no fuzzy comparison happens anywhere.
package normalize

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// Name canonicalizes a company name for duplicate comparison: trimmed and
// lower-cased.
func Name(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Website canonicalizes a website for duplicate comparison: trimmed,
// lower-cased, with exactly one trailing slash removed.
func Website(s string) string {
	w := strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSuffix(w, "/")
}

// EnsureScheme backfills https:// onto a bare website value. Values already
// carrying an http or https prefix pass through untouched.
func EnsureScheme(s string) string {
	w := strings.TrimSpace(s)
	if w == "" {
		return ""
	}
	if strings.HasPrefix(w, "http") {
		return w
	}
	return "https://" + w
}

// FirstURL returns the first http(s) URL found in text, or "".
func FirstURL(text string) string {
	return urlPattern.FindString(text)
}
