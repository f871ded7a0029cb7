// Package sanitize turns URL paths into filesystem-safe skill names and
// trims descriptions to frontmatter-friendly lengths.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxSkillNameLength is the hard limit for skill directory names.
const MaxSkillNameLength = 64

// Compiled once at package init; read-only afterwards.
var (
	invalidChars     = regexp.MustCompile(`[^a-z0-9-]`)
	multipleHyphens  = regexp.MustCompile(`-+`)
	edgeHyphens      = regexp.MustCompile(`^-+|-+$`)
	percentDecoder   = strings.NewReplacer("%20", " ", "%2F", "/", "%3A", ":", "%3F", "?", "%3D", "=", "%26", "&", "%23", "#")
	separatorHyphens = strings.NewReplacer("/", "-", "\\", "-", "_", "-")
)

// knownExtensions are stripped from the end of a path before sanitizing.
var knownExtensions = []string{".html", ".htm", ".md", ".txt", ".php", ".asp", ".aspx", ".jsp"}

// SkillName sanitizes a URL path (or any string) into a strict kebab-case
// skill name: lowercase, `[a-z0-9-]` only, no leading/trailing or repeated
// hyphens, at most MaxSkillNameLength characters. The function is total and
// idempotent.
//
//	SkillName("foo/bar_baz.html") == "foo-bar-baz"
//	SkillName("API_Reference.html") == "api-reference"
func SkillName(path string) string {
	s := strings.ToLower(percentDecoder.Replace(path))
	s = separatorHyphens.Replace(s)
	s = stripExtension(s)
	s = invalidChars.ReplaceAllString(s, "")
	s = multipleHyphens.ReplaceAllString(s, "-")
	s = edgeHyphens.ReplaceAllString(s, "")
	return truncateAtHyphen(s, MaxSkillNameLength)
}

// stripExtension removes at most one known trailing file extension.
func stripExtension(s string) string {
	for _, ext := range knownExtensions {
		if strings.HasSuffix(s, ext) {
			return s[:len(s)-len(ext)]
		}
	}
	return s
}

// truncateAtHyphen cuts s to maxLen characters, preferring the last hyphen
// boundary when it lies past the midpoint.
func truncateAtHyphen(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	truncated := s[:maxLen]
	if lastHyphen := strings.LastIndex(truncated, "-"); lastHyphen > maxLen/2 {
		return truncated[:lastHyphen]
	}
	return truncated
}

// sentence boundaries recognised by Description.
var sentenceEndings = []string{". ", "! ", "? "}

// Description truncates text to at most maxChars characters, preferring to
// end at a sentence boundary past the midpoint. When no usable boundary
// exists the text is cut at the last whitespace (or hard-truncated) and an
// ellipsis is appended, so the result is never longer than maxChars+3.
func Description(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}

	truncated := text[:maxChars]

	bestEnd := 0
	for _, ending := range sentenceEndings {
		if pos := strings.LastIndex(truncated, ending); pos > bestEnd {
			bestEnd = pos + 1 // include the punctuation
		}
	}

	if bestEnd > maxChars/2 {
		return strings.TrimSpace(truncated[:bestEnd])
	}

	if lastSpace := strings.LastIndex(truncated, " "); lastSpace >= 0 {
		return strings.TrimSpace(truncated[:lastSpace]) + "..."
	}
	return strings.TrimSpace(truncated) + "..."
}
