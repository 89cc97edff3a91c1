package favorg

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a bookmark URL before duplicate grouping:
// scheme and host lowercase, "www." stripped, default ports dropped,
// trailing slash and fragment removed. Query strings stay, they can be
// significant. Unparseable input falls back to trimmed lowercase equality.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return strings.ToLower(raw)
	}
	scheme := strings.ToLower(parsed.Scheme)
	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")
	if scheme == "http" {
		host = strings.TrimSuffix(host, ":80")
	} else if scheme == "https" {
		host = strings.TrimSuffix(host, ":443")
	}
	path := strings.TrimSuffix(parsed.EscapedPath(), "/")
	normalized := scheme + "://" + host + path
	if parsed.RawQuery != "" {
		normalized += "?" + parsed.RawQuery
	}
	return normalized
}

// IsLocalhostURL reports whether the URL points at the local machine.
func IsLocalhostURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
