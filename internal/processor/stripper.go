package processor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
)

// noiseTags are removed wholesale, subtree included.
var noiseTags = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"iframe", "svg", "canvas", "video", "audio",
	"form", "button",
}

// Word-boundary matchers for noise ids and class groups. Matching on
// attribute words rather than exact values catches utility-class soup
// like "sidebar sidebar--left js-sidebar".
var (
	noiseIDs = regexp.MustCompile(`\b(cookie|consent|banner|popup|modal|overlay|gdpr|privacy-notice|skip-link|feedback|newsletter|subscribe)\b`)

	noiseClassGroups = []*regexp.Regexp{
		// Navigation and menus
		regexp.MustCompile(`\b(nav|navigation|menu|sidebar|toc|table-of-contents|breadcrumb|breadcrumbs)\b`),
		// Cookie and consent banners
		regexp.MustCompile(`\b(cookie|consent|gdpr|privacy-notice|cookie-banner|cookie-consent)\b`),
		// Ads and promotional content
		regexp.MustCompile(`\b(ads?|advertisement|promo|promotional|banner|announcement)\b`),
		// Feedback and ratings
		regexp.MustCompile(`\b(feedback|rating|ratings|helpful|thumbs|vote|voting)\b`),
		// Skip links and accessibility shortcuts
		regexp.MustCompile(`\b(skip-link|skip-to-content|sr-only|visually-hidden)\b`),
		// Social sharing
		regexp.MustCompile(`\b(social|share|sharing|follow-us)\b`),
		// Page metadata footers
		regexp.MustCompile(`\b(page-meta|page-info|last-updated|edit-page|view-source|report-issue)\b`),
	}

	iconClasses = regexp.MustCompile(`\b(material-icons|material-symbols|icon|fa|fas|far|fab|glyphicon)\b`)

	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	dataAttrs    = regexp.MustCompile(`\s+data-[a-z-]+="[^"]*"`)
)

// Stripper removes noise elements from HTML before markdown conversion.
// Removal operates on the parsed DOM tree so nesting and attribute order
// don't matter; comments and data attributes are scrubbed from the
// serialized output afterwards.
type Stripper struct {
	extra []cascadia.Selector
}

// NewStripper builds a stripper. extraSelectors come from the
// configuration; selectors that fail to parse are logged and skipped.
func NewStripper(extraSelectors []string) *Stripper {
	s := &Stripper{}
	for _, raw := range extraSelectors {
		sel, err := cascadia.Compile(raw)
		if err != nil {
			logger.Warn("skipping invalid CSS selector", "selector", raw, "error", err)
			continue
		}
		s.extra = append(s.extra, sel)
	}
	return s
}

// Strip removes noise elements and returns the cleaned markup. It is
// best-effort and never fails: unparseable input is returned unchanged
// except for comment and data-attribute scrubbing.
func (s *Stripper) Strip(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return scrubSerialized(html)
	}

	doc.Find(strings.Join(noiseTags, ", ")).Remove()

	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok && noiseIDs.MatchString(id) {
			sel.Remove()
		}
	})

	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, ok := sel.Attr("class")
		if !ok {
			return
		}
		for _, group := range noiseClassGroups {
			if group.MatchString(class) {
				sel.Remove()
				return
			}
		}
	})

	// Icon fonts render their glyph name as text; drop the elements.
	doc.Find("span[class], i[class]").Each(func(_ int, sel *goquery.Selection) {
		if class, ok := sel.Attr("class"); ok && iconClasses.MatchString(class) {
			sel.Remove()
		}
	})

	// Standalone skip links to in-page anchors.
	doc.Find(`a[href^="#"]`).Each(func(_ int, sel *goquery.Selection) {
		if strings.HasPrefix(strings.TrimSpace(sel.Text()), "Skip") {
			sel.Remove()
		}
	})

	for _, sel := range s.extra {
		doc.FindMatcher(sel).Remove()
	}

	out, err := doc.Html()
	if err != nil {
		return scrubSerialized(html)
	}
	return scrubSerialized(out)
}

// scrubSerialized removes HTML comments and data attributes from the
// serialized markup.
func scrubSerialized(html string) string {
	html = htmlComments.ReplaceAllString(html, "")
	return dataAttrs.ReplaceAllString(html, "")
}
