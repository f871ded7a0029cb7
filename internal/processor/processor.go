// Package processor turns raw crawled HTML into skill documents. The
// pipeline is strip noise, convert to markdown, scrub artifacts, then
// assemble the SKILL.md with extracted metadata.
package processor

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
)

// ProcessedPage is the result of processing a single page.
type ProcessedPage struct {
	Metadata PageMetadata

	// CleanedHTML is the markup after noise stripping.
	CleanedHTML string

	// Markdown is the converted and scrubbed content.
	Markdown string

	// SkillDoc is the complete SKILL.md document.
	SkillDoc string
}

// Processor converts crawled pages into skill documents. Safe for
// concurrent use after construction.
type Processor struct {
	stripper *Stripper
	scrubber *Scrubber
	convert  func(html string) (string, error)
}

// New builds a processor from the configuration's cleaning settings.
func New(cfg *config.Config) *Processor {
	return &Processor{
		stripper: NewStripper(cfg.RemoveSelectors),
		scrubber: NewScrubber(cfg.IconNames, cfg.ScrubPatterns),
		convert: func(html string) (string, error) {
			return htmltomarkdown.ConvertString(html)
		},
	}
}

// Process runs the full pipeline on one page. Metadata is extracted from
// the raw document before stripping so head elements are still available.
func (p *Processor) Process(url, html string) (*ProcessedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML for %s: %w", url, err)
	}

	metadata := extractMetadata(url, doc)
	cleaned := p.stripper.Strip(html)

	markdown, err := p.convert(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to convert HTML to markdown for %s: %w", url, err)
	}
	markdown = p.scrubber.Scrub(markdown)

	logger.Debug("processed page",
		"url", url,
		"skill", metadata.SkillName,
		"html_bytes", len(html),
		"markdown_bytes", len(markdown))

	return &ProcessedPage{
		Metadata:    metadata,
		CleanedHTML: cleaned,
		Markdown:    markdown,
		SkillDoc:    assembleSkillMD(metadata, markdown),
	}, nil
}
