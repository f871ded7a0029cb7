package processor

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"

	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
	"github.com/AmanSikarwar/agent-skills-generator/internal/sanitize"
	"github.com/AmanSikarwar/agent-skills-generator/internal/urlutil"
)

const (
	// MaxDescriptionLength caps the frontmatter description.
	MaxDescriptionLength = 1024

	// largeContentThreshold triggers a warning for oversized skills.
	// Roughly 5,000 tokens at 4 characters per token.
	largeContentThreshold = 20_000

	// fallbackDescriptionLength caps a first-paragraph description.
	fallbackDescriptionLength = 200
)

// PageMetadata is what the frontmatter and skill directory name are
// built from.
type PageMetadata struct {
	// Title from <title>, falling back to the first <h1>.
	Title string

	// Description from meta tags, falling back to the first substantial
	// paragraph.
	Description string

	// URL is the page's original address.
	URL string

	// SkillName is the sanitized kebab-case directory name.
	SkillName string

	// ProcessedAt is the UTC extraction timestamp.
	ProcessedAt string
}

// extractMetadata pulls title, description and skill name from a parsed
// page. Extraction runs on the raw document, before noise stripping, so
// head elements are still present.
func extractMetadata(url string, doc *goquery.Document) PageMetadata {
	title := extractTitle(doc)
	if title == "" {
		title = "Untitled"
	}

	description := extractDescription(doc)

	skillName := sanitize.SkillName(urlutil.ExtractPath(url))
	if skillName == "" {
		// Root URLs have no usable path; fall back to the domain.
		skillName = sanitize.SkillName(urlutil.ExtractDomain(url))
	}
	if skillName == "" {
		skillName = "index"
	}

	return PageMetadata{
		Title:       title,
		Description: description,
		URL:         url,
		SkillName:   skillName,
		ProcessedAt: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

func extractDescription(doc *goquery.Document) string {
	for _, selector := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}

	// First substantial paragraph as a last resort.
	var fallback string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 50 {
			fallback = sanitize.Description(text, fallbackDescriptionLength)
			return false
		}
		return true
	})
	return fallback
}

// assembleSkillMD renders the final document: YAML frontmatter, the page
// title as an H1, then the full markdown content.
func assembleSkillMD(meta PageMetadata, markdown string) string {
	description := sanitize.Description(meta.Description, MaxDescriptionLength)
	description = strings.ReplaceAll(description, "\n", " ")
	description = strings.ReplaceAll(description, "\r", "")

	if n := len(markdown); n > largeContentThreshold {
		logger.Warn("large skill content, consider splitting into smaller sections",
			"skill", meta.SkillName,
			"chars", humanize.Comma(int64(n)),
			"approx_tokens", humanize.Comma(int64(n/4)))
	}

	return fmt.Sprintf(`---
name: %s
description: %s
metadata:
  url: %s
---

# %s

%s
`, meta.SkillName, description, meta.URL, meta.Title, strings.TrimSpace(markdown))
}
