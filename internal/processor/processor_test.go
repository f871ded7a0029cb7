package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
)

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	cfg := config.Default()
	return New(&cfg)
}

func TestProcess_ExtractsMetadata(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Test Page Title</title>
    <meta name="description" content="This is a test description.">
</head>
<body>
    <h1>Main Heading</h1>
    <p>Some content here.</p>
</body>
</html>`

	page, err := newTestProcessor(t).Process("https://example.com/docs/test", html)
	require.NoError(t, err)

	assert.Equal(t, "Test Page Title", page.Metadata.Title)
	assert.Equal(t, "This is a test description.", page.Metadata.Description)
	assert.Equal(t, "docs-test", page.Metadata.SkillName)
	assert.Equal(t, "https://example.com/docs/test", page.Metadata.URL)
	assert.NotEmpty(t, page.Metadata.ProcessedAt)
}

func TestProcess_TitleFallsBackToH1(t *testing.T) {
	html := `<html><body><h1>Heading Title</h1><p>Text</p></body></html>`

	page, err := newTestProcessor(t).Process("https://example.com/page", html)
	require.NoError(t, err)
	assert.Equal(t, "Heading Title", page.Metadata.Title)
}

func TestProcess_UntitledWhenNoTitle(t *testing.T) {
	page, err := newTestProcessor(t).Process("https://example.com/page", "<html><body><p>x</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", page.Metadata.Title)
}

func TestProcess_DescriptionFallbacks(t *testing.T) {
	ogHTML := `<html><head><meta property="og:description" content="OG description here."></head><body></body></html>`
	page, err := newTestProcessor(t).Process("https://example.com/a", ogHTML)
	require.NoError(t, err)
	assert.Equal(t, "OG description here.", page.Metadata.Description)

	long := strings.Repeat("All work and no play makes for dull documentation. ", 3)
	paraHTML := `<html><body><p>short</p><p>` + long + `</p></body></html>`
	page, err = newTestProcessor(t).Process("https://example.com/b", paraHTML)
	require.NoError(t, err)
	assert.NotEmpty(t, page.Metadata.Description)
	assert.LessOrEqual(t, len(page.Metadata.Description), 203)

	page, err = newTestProcessor(t).Process("https://example.com/c", `<html><body><p>short</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, page.Metadata.Description)
}

func TestProcess_RootURLSkillName(t *testing.T) {
	page, err := newTestProcessor(t).Process("https://docs.flutter.dev/", "<html><body><p>x</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "docsflutterdev", page.Metadata.SkillName)
}

func TestStrip_RemovesNoiseKeepsContent(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
    <script>console.log("remove me");</script>
    <style>.foo { color: red; }</style>
</head>
<body>
    <nav>Navigation</nav>
    <main>
        <h1>Keep This</h1>
        <p>Important content.</p>
    </main>
    <footer>Footer content</footer>
</body>
</html>`

	cleaned := NewStripper(nil).Strip(html)

	assert.NotContains(t, cleaned, "console.log")
	assert.NotContains(t, cleaned, "color: red")
	assert.NotContains(t, cleaned, "Navigation")
	assert.NotContains(t, cleaned, "Footer content")
	assert.Contains(t, cleaned, "Keep This")
	assert.Contains(t, cleaned, "Important content")
}

func TestStrip_RemovesButtonsKeepsCode(t *testing.T) {
	html := `<div>
    <h1>Code Example</h1>
    <pre><code>print("hello")</code></pre>
    <button class="copy-btn">Copy</button>
</div>`

	cleaned := NewStripper(nil).Strip(html)

	assert.NotContains(t, cleaned, "<button")
	assert.Contains(t, cleaned, "Code Example")
	assert.Contains(t, cleaned, "print")
}

func TestStrip_RemovesCookieBannerByClass(t *testing.T) {
	html := `<div class="cookie-consent">
    <p>This site uses cookies</p>
</div>
<main>
    <h1>Welcome</h1>
    <p>Main content</p>
</main>`

	cleaned := NewStripper(nil).Strip(html)

	assert.NotContains(t, cleaned, "This site uses cookies")
	assert.Contains(t, cleaned, "Welcome")
	assert.Contains(t, cleaned, "Main content")
}

func TestStrip_RemovesByIDWord(t *testing.T) {
	html := `<div id="gdpr-overlay-7"><p>Consent text</p></div><p>Real text</p>`
	cleaned := NewStripper(nil).Strip(html)

	assert.NotContains(t, cleaned, "Consent text")
	assert.Contains(t, cleaned, "Real text")
}

func TestStrip_RemovesIconElementsAndSkipLinks(t *testing.T) {
	html := `<a href="#main">Skip to main content</a>
<span class="material-icons">content_copy</span>
<i class="fa fa-home"></i>
<p>Body text</p>`

	cleaned := NewStripper(nil).Strip(html)

	assert.NotContains(t, cleaned, "Skip to main content")
	assert.NotContains(t, cleaned, "content_copy")
	assert.Contains(t, cleaned, "Body text")
}

func TestStrip_RemovesCommentsAndDataAttrs(t *testing.T) {
	html := `<div data-tracking-id="abc123"><!-- hidden note --><p>Visible</p></div>`
	cleaned := NewStripper(nil).Strip(html)

	assert.NotContains(t, cleaned, "hidden note")
	assert.NotContains(t, cleaned, "data-tracking-id")
	assert.Contains(t, cleaned, "Visible")
}

func TestStrip_ExtraSelectorsFromConfig(t *testing.T) {
	s := NewStripper([]string{".custom-widget", "[[["})
	cleaned := s.Strip(`<div class="custom-widget">Widget</div><p>Keep</p>`)

	assert.NotContains(t, cleaned, "Widget")
	assert.Contains(t, cleaned, "Keep")
}

func TestStrip_NestedNoise(t *testing.T) {
	html := `<nav><ul><li><a href="/a">A</a></li><li><div class="deep">B</div></li></ul></nav><p>Content</p>`
	cleaned := NewStripper(nil).Strip(html)

	assert.NotContains(t, cleaned, ">A<")
	assert.NotContains(t, cleaned, ">B<")
	assert.Contains(t, cleaned, "Content")
}

func TestScrub_RemovesIconNames(t *testing.T) {
	markdown := `list chevron_right

# Main Title

content_copy

Some actual content here.

thumb_up thumb_down

Was this page's content helpful?`

	cleaned := NewScrubber(nil, nil).Scrub(markdown)

	assert.NotContains(t, cleaned, "chevron_right")
	assert.NotContains(t, cleaned, "content_copy")
	assert.NotContains(t, cleaned, "thumb_up")
	assert.NotContains(t, cleaned, "thumb_down")
	assert.Contains(t, cleaned, "# Main Title")
	assert.Contains(t, cleaned, "Some actual content here")
	assert.NotContains(t, cleaned, "Was this page's content helpful")
}

func TestScrub_KeepsIconNamesInsideWords(t *testing.T) {
	cleaned := NewScrubber(nil, nil).Scrub("The closed-form solution searches the searchable space.")
	assert.Contains(t, cleaned, "closed-form")
	assert.Contains(t, cleaned, "searchable")
}

func TestScrub_RemovesSkipLinks(t *testing.T) {
	markdown := `[Skip to main content](#site-content)

# Welcome

This is the main content.`

	cleaned := NewScrubber(nil, nil).Scrub(markdown)

	assert.NotContains(t, cleaned, "Skip to main content")
	assert.Contains(t, cleaned, "# Welcome")
	assert.Contains(t, cleaned, "This is the main content")
}

func TestScrub_RemovesCookieNotice(t *testing.T) {
	markdown := `example.com uses cookies from Google to deliver and enhance the quality of its services.

Learn more OK, got it

# Main Content

Actual page content here.`

	cleaned := NewScrubber(nil, nil).Scrub(markdown)

	assert.NotContains(t, cleaned, "uses cookies")
	assert.NotContains(t, cleaned, "OK, got it")
	assert.Contains(t, cleaned, "# Main Content")
	assert.Contains(t, cleaned, "Actual page content here")
}

func TestScrub_RemovesPageFooter(t *testing.T) {
	markdown := `# Documentation

Content here.

Unless stated otherwise, the documentation on this site reflects Flutter 3.38.6. Page last updated on 2025-10-28.`

	cleaned := NewScrubber(nil, nil).Scrub(markdown)

	assert.NotContains(t, cleaned, "Unless stated otherwise")
	assert.NotContains(t, cleaned, "Page last updated")
	assert.Contains(t, cleaned, "# Documentation")
	assert.Contains(t, cleaned, "Content here")
}

func TestScrub_CollapsesBlankLines(t *testing.T) {
	cleaned := NewScrubber(nil, nil).Scrub("a\n\n\n\n\n\nb")
	assert.NotContains(t, cleaned, "\n\n\n\n")
}

func TestScrub_CustomVocabulary(t *testing.T) {
	s := NewScrubber([]string{"custom_glyph"}, []string{`(?m)^Sponsored:.*$`})
	cleaned := s.Scrub("custom_glyph Intro\n\nSponsored: buy now\n\nReal text")

	assert.NotContains(t, cleaned, "custom_glyph")
	assert.NotContains(t, cleaned, "Sponsored")
	assert.Contains(t, cleaned, "Real text")
}

func TestAssembleSkillMD(t *testing.T) {
	meta := PageMetadata{
		Title:       "Flutter Installation Guide",
		Description: "Learn how to install Flutter on your system.",
		URL:         "https://docs.flutter.dev/get-started/install",
		SkillName:   "get-started-install",
		ProcessedAt: "2024-01-15T10:30:00Z",
	}
	markdown := "## Installation Steps\n\n1. Download Flutter\n2. Extract the archive\n3. Add to PATH"

	doc := assembleSkillMD(meta, markdown)

	assert.True(t, strings.HasPrefix(doc, "---\n"))
	assert.Contains(t, doc, "name: get-started-install")
	assert.Contains(t, doc, "description: Learn how to install Flutter on your system.")
	assert.Contains(t, doc, "metadata:\n  url: https://docs.flutter.dev/get-started/install")
	assert.Contains(t, doc, "# Flutter Installation Guide")
	assert.Contains(t, doc, "## Installation Steps")
	assert.Contains(t, doc, "1. Download Flutter")
	assert.Contains(t, doc, "3. Add to PATH")
	assert.True(t, strings.HasSuffix(doc, "\n"))
}

func TestAssembleSkillMD_FlattensDescription(t *testing.T) {
	meta := PageMetadata{
		Title:       "T",
		Description: "line one\nline two\r\nline three",
		URL:         "https://example.com",
		SkillName:   "t",
	}

	doc := assembleSkillMD(meta, "body")
	assert.Contains(t, doc, "description: line one line two line three")
}

func TestAssembleSkillMD_TruncatesLongDescription(t *testing.T) {
	meta := PageMetadata{
		Title:       "T",
		Description: strings.Repeat("word ", 400),
		URL:         "https://example.com",
		SkillName:   "t",
	}

	doc := assembleSkillMD(meta, "body")
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "description: ") {
			assert.LessOrEqual(t, len(line), len("description: ")+MaxDescriptionLength+3)
			return
		}
	}
	t.Fatal("no description line in document")
}

func TestProcess_EndToEnd(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>API Reference</title>
    <meta name="description" content="Complete API documentation.">
</head>
<body>
    <nav>Site navigation</nav>
    <main>
        <h1>API Reference</h1>
        <p>This is the main content.</p>
        <h2>Methods</h2>
        <p>Method documentation here.</p>
    </main>
    <footer>Copyright</footer>
</body>
</html>`

	page, err := newTestProcessor(t).Process("https://example.com/docs/api", html)
	require.NoError(t, err)

	assert.Equal(t, "API Reference", page.Metadata.Title)
	assert.Equal(t, "docs-api", page.Metadata.SkillName)

	assert.Contains(t, page.SkillDoc, "name: docs-api")
	assert.Contains(t, page.SkillDoc, "# API Reference")
	assert.Contains(t, page.SkillDoc, "Methods")
	assert.Contains(t, page.SkillDoc, "Method documentation here")
	assert.NotContains(t, page.SkillDoc, "Site navigation")
	assert.NotContains(t, page.SkillDoc, "Copyright")
}
