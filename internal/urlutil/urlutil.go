// Package urlutil provides URL helpers shared by the filter, crawler and
// processor packages.
package urlutil

import (
	"net/url"
	"strings"
)

// ExtractPath returns the path portion of a URL, without domain or query
// string. A URL with no path yields "/".
func ExtractPath(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err == nil && parsed.Host != "" {
		if parsed.Path == "" {
			return "/"
		}
		return parsed.Path
	}

	// Not parseable as an absolute URL: recover the path manually.
	if idx := strings.Index(rawURL, "://"); idx >= 0 {
		rest := rawURL[idx+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			path := rest[slash:]
			if q := strings.Index(path, "?"); q >= 0 {
				path = path[:q]
			}
			return path
		}
	}
	return "/"
}

// ExtractDomain returns the host of a URL, or "" if it cannot be parsed.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

// DomainWithScheme returns "scheme://host" for a URL, or "" if the URL has
// no host.
func DomainWithScheme(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}

// ParseURLPattern splits a user-supplied starting URL into a crawlable base
// URL and, when the input contains glob wildcards, the full pattern.
//
//	ParseURLPattern("https://docs.flutter.dev/ui/*")
//	  -> "https://docs.flutter.dev/ui/", "https://docs.flutter.dev/ui/*"
//
// URLs without wildcards are returned as-is with an empty pattern.
func ParseURLPattern(rawURL string) (base string, pattern string) {
	star := strings.Index(rawURL, "*")
	question := strings.Index(rawURL, "?")
	if star < 0 && question < 0 {
		return rawURL, ""
	}

	patternStart := len(rawURL)
	if star >= 0 {
		patternStart = star
	}
	if question >= 0 && question < patternStart {
		patternStart = question
	}

	baseEnd := patternStart
	if slash := strings.LastIndex(rawURL[:patternStart], "/"); slash >= 0 {
		baseEnd = slash + 1
	}
	return rawURL[:baseEnd], rawURL
}

// Normalize canonicalizes a URL for deduplication: fragments are dropped and
// a trailing slash is removed from non-root paths. Returns "" for URLs that
// cannot be parsed.
func Normalize(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	parsed.Fragment = ""
	if len(parsed.Path) > 1 && strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = parsed.Path[:len(parsed.Path)-1]
	}
	return parsed.String()
}

// IsSameDomain reports whether two URLs share a host.
func IsSameDomain(url1, url2 string) bool {
	parsed1, err := url.Parse(url1)
	if err != nil {
		return false
	}
	parsed2, err := url.Parse(url2)
	if err != nil {
		return false
	}
	return parsed1.Host == parsed2.Host
}
