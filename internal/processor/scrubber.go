package processor

import (
	"regexp"
	"strings"

	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
)

// defaultIconNames are material icon ligatures that leak into converted
// markdown as literal text when the icon font element survives stripping.
var defaultIconNames = []string{
	"chevron_right", "chevron_left",
	"arrow_forward", "arrow_back", "arrow_drop_down", "arrow_drop_up",
	"content_copy", "content_paste",
	"thumb_up", "thumb_down", "thumbs_up", "thumbs_down",
	"vertical_align_top", "vertical_align_bottom",
	"expand_more", "expand_less",
	"menu", "close", "search", "home", "settings",
	"check", "check_circle", "error", "warning", "info",
	"list", "share", "edit", "delete", "add", "remove",
	"star", "star_border", "favorite", "favorite_border",
	"bookmark", "bookmark_border",
	"visibility", "visibility_off", "lock", "lock_open",
	"person", "people", "notifications", "email", "phone",
	"location_on", "calendar_today", "schedule",
	"more_vert", "more_horiz",
	"open_in_new", "launch", "link",
	"file_download", "file_upload", "cloud_download", "cloud_upload",
	"play_arrow", "pause", "stop",
	"skip_next", "skip_previous", "fast_forward", "fast_rewind",
	"volume_up", "volume_down", "volume_mute",
	"fullscreen", "fullscreen_exit", "zoom_in", "zoom_out",
	"refresh", "sync", "cached",
	"done", "done_all", "clear", "cancel",
	"help", "help_outline", "code",
}

var skipLinkPatterns = []string{
	`(?m)^\[Skip to main content\]\([^)]*\)\s*$`,
	`(?m)^\[Skip to content\]\([^)]*\)\s*$`,
	`(?m)^Skip to (main )?content\s*$`,
}

var cookiePatterns = []string{
	`(?is).*uses cookies.*\n.*Learn more.*OK,? got it\s*`,
	`(?is)This site uses cookies.*\n?.*Accept\s*`,
	`(?is)We use cookies.*\n?.*Got it\s*`,
}

var feedbackPatterns = []string{
	`(?m)^Was this page'?s? content helpful\?\s*$`,
	`(?m)^Was this helpful\?\s*$`,
	`(?m)^Did you find this helpful\?\s*$`,
	`(?m)^Rate this page:?\s*$`,
}

// footerPatterns and promoPatterns apply case-insensitively.
var footerPatterns = []string{
	`(?m)^Unless stated otherwise.*Page last updated.*$`,
	`(?m)^Page last updated on \d{4}-\d{1,2}-\d{1,2}\.?\s*$`,
	`(?m)^\[View source\]\([^)]*\).*\[report an issue\]\([^)]*\).*$`,
	`(?m)^Last modified:.*$`,
	`(?m)^Last updated:.*$`,
}

var promoPatterns = []string{
	`(?m)^Check out our newly published.*$`,
	`(?m)^🎉.*new.*!?\s*$`,
	`(?m)^📢.*announcement.*$`,
}

var (
	emptyLines      = regexp.MustCompile(`(?m)^\s*$`)
	whitespaceLines = regexp.MustCompile(`(?m)^\s+$`)
	excessBlanks    = regexp.MustCompile(`\n{4,}`)
)

// Scrubber removes textual noise artifacts from converted markdown:
// icon ligature names, skip links, cookie notices, feedback prompts,
// footer metadata and promotional banners.
type Scrubber struct {
	icons    *regexp.Regexp
	denylist []*regexp.Regexp
}

// NewScrubber builds a scrubber. extraIcons and extraPatterns extend the
// built-in vocabulary from the configuration; invalid extra patterns are
// logged and skipped.
func NewScrubber(extraIcons, extraPatterns []string) *Scrubber {
	quoted := make([]string, 0, len(defaultIconNames)+len(extraIcons))
	for _, n := range defaultIconNames {
		quoted = append(quoted, regexp.QuoteMeta(n))
	}
	for _, n := range extraIcons {
		quoted = append(quoted, regexp.QuoteMeta(n))
	}
	icons := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)

	var denylist []*regexp.Regexp
	add := func(patterns []string, caseInsensitive bool) {
		for _, p := range patterns {
			if caseInsensitive {
				p = "(?i)" + p
			}
			re, err := regexp.Compile(p)
			if err != nil {
				logger.Warn("skipping invalid scrub pattern", "pattern", p, "error", err)
				continue
			}
			denylist = append(denylist, re)
		}
	}
	add(skipLinkPatterns, false)
	add(cookiePatterns, false)
	add(feedbackPatterns, false)
	add(footerPatterns, true)
	add(promoPatterns, true)
	add(extraPatterns, false)

	return &Scrubber{icons: icons, denylist: denylist}
}

// Scrub cleans converted markdown. Pure; the result is stable under
// repeated application.
func (s *Scrubber) Scrub(markdown string) string {
	cleaned := s.icons.ReplaceAllString(markdown, "")
	cleaned = emptyLines.ReplaceAllString(cleaned, "")

	for _, re := range s.denylist {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = excessBlanks.ReplaceAllString(cleaned, "\n\n\n")
	cleaned = whitespaceLines.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
