package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
)

func TestShouldCrawl_NoRules(t *testing.T) {
	f, err := New(nil)
	require.NoError(t, err)

	assert.True(t, f.ShouldCrawl("https://example.com/anything"))
	assert.False(t, f.HasAllowRules())
}

func TestShouldCrawl_IgnoreWins(t *testing.T) {
	f, err := New([]config.Rule{
		{URL: "https://example.com/docs/*", Action: config.ActionAllow},
		{URL: "*/docs/private/*", Action: config.ActionIgnore},
	})
	require.NoError(t, err)

	assert.True(t, f.ShouldCrawl("https://example.com/docs/api"))
	// Matches both sets; ignore takes precedence.
	assert.False(t, f.ShouldCrawl("https://example.com/docs/private/keys"))
}

func TestShouldCrawl_DefaultDenyWithAllowRules(t *testing.T) {
	f, err := New([]config.Rule{
		{URL: "https://example.com/docs/*", Action: config.ActionAllow},
	})
	require.NoError(t, err)

	assert.True(t, f.HasAllowRules())
	assert.True(t, f.ShouldCrawl("https://example.com/docs/intro"))
	assert.False(t, f.ShouldCrawl("https://example.com/blog/post"))
	assert.False(t, f.ShouldCrawl("https://other.com/docs/intro"))
}

func TestShouldCrawl_IgnoreOnlyDefaultAllow(t *testing.T) {
	f, err := New([]config.Rule{
		{URL: "*/release-notes/*", Action: config.ActionIgnore},
	})
	require.NoError(t, err)

	assert.False(t, f.ShouldCrawl("https://example.com/release-notes/v2"))
	assert.True(t, f.ShouldCrawl("https://example.com/docs/api"))
}

func TestShouldCrawl_OrderIndependent(t *testing.T) {
	rules := []config.Rule{
		{URL: "https://example.com/*", Action: config.ActionAllow},
		{URL: "https://example.com/private/*", Action: config.ActionIgnore},
	}
	reversed := []config.Rule{rules[1], rules[0]}

	f1, err := New(rules)
	require.NoError(t, err)
	f2, err := New(reversed)
	require.NoError(t, err)

	for _, url := range []string{
		"https://example.com/docs",
		"https://example.com/private/secret",
		"https://other.com/",
	} {
		assert.Equal(t, f1.ShouldCrawl(url), f2.ShouldCrawl(url), "url %q", url)
	}
}

func TestShouldCrawl_StarCrossesSlashes(t *testing.T) {
	f, err := New([]config.Rule{
		{URL: "https://example.com/docs/*", Action: config.ActionAllow},
	})
	require.NoError(t, err)

	assert.True(t, f.ShouldCrawl("https://example.com/docs/a/b/c"))
}

func TestShouldCrawl_QuestionMark(t *testing.T) {
	f, err := New([]config.Rule{
		{URL: "https://example.com/v?/api", Action: config.ActionAllow},
	})
	require.NoError(t, err)

	assert.True(t, f.ShouldCrawl("https://example.com/v1/api"))
	assert.True(t, f.ShouldCrawl("https://example.com/v2/api"))
	assert.False(t, f.ShouldCrawl("https://example.com/v10/api"))
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New([]config.Rule{
		{URL: "https://example.com/[unclosed", Action: config.ActionAllow},
	})
	assert.Error(t, err)
}

func TestGlobToRegex(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"*.txt", `^.*\.txt$`},
		{"test?", `^test.$`},
		{"test[1]", `^test\[1\]$`},
		{"https://example.com/*", `^https://example\.com/.*$`},
		{"plain", `^plain$`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GlobToRegex(tt.pattern), "pattern %q", tt.pattern)
	}
}

func TestRegexps_MatchLikeGlobs(t *testing.T) {
	f, err := New([]config.Rule{
		{URL: "https://example.com/docs/*", Action: config.ActionAllow},
		{URL: "*/internal/*", Action: config.ActionIgnore},
	})
	require.NoError(t, err)

	allow := f.AllowRegexps()
	require.Len(t, allow, 1)
	assert.True(t, allow[0].MatchString("https://example.com/docs/api/v2"))
	assert.False(t, allow[0].MatchString("https://example.com/blog"))

	ignore := f.IgnoreRegexps()
	require.Len(t, ignore, 1)
	assert.True(t, ignore[0].MatchString("https://example.com/internal/tools"))
}

func TestEvaluate_FallbackOnBrokenPattern(t *testing.T) {
	rules := []config.Rule{
		{URL: "https://example.com/[unclosed", Action: config.ActionAllow},
		{URL: "*/private/*", Action: config.ActionIgnore},
	}

	// Compilation fails; loose matching keeps the same precedence.
	assert.False(t, Evaluate(rules, "https://example.com/private/x"))
	assert.True(t, Evaluate(rules, "https://example.com/[unclosed/page"))
	assert.False(t, Evaluate(rules, "https://other.com/page"))
}

func TestEvaluate_CompiledPath(t *testing.T) {
	rules := []config.Rule{
		{URL: "https://example.com/docs/*", Action: config.ActionAllow},
	}
	assert.True(t, Evaluate(rules, "https://example.com/docs/a"))
	assert.False(t, Evaluate(rules, "https://example.com/other"))
}

func TestAutoScope_WithPattern(t *testing.T) {
	scoped := AutoScope("https://docs.flutter.dev/ui/", "https://docs.flutter.dev/ui/*", nil)
	require.Len(t, scoped, 2)
	assert.Equal(t, config.ActionAllow, scoped[0].Action)
	assert.Equal(t, "https://docs.flutter.dev/ui/", scoped[0].URL)
	assert.Equal(t, "https://docs.flutter.dev/ui/**", scoped[1].URL)

	f, err := New(scoped)
	require.NoError(t, err)
	assert.True(t, f.ShouldCrawl("https://docs.flutter.dev/ui/widgets/button"))
	assert.False(t, f.ShouldCrawl("https://docs.flutter.dev/blog/post"))
}

func TestAutoScope_WithoutPattern(t *testing.T) {
	scoped := AutoScope("https://example.com/docs", "", nil)
	require.Len(t, scoped, 2)
	assert.Equal(t, "https://example.com/docs", scoped[0].URL)
	assert.Equal(t, "https://example.com/docs/**", scoped[1].URL)

	f, err := New(scoped)
	require.NoError(t, err)
	assert.True(t, f.ShouldCrawl("https://example.com/docs"))
	assert.True(t, f.ShouldCrawl("https://example.com/docs/guide/install"))
	assert.False(t, f.ShouldCrawl("https://example.com/pricing"))
}

func TestAutoScope_PreservesUserRules(t *testing.T) {
	user := []config.Rule{{URL: "*/changelog/*", Action: config.ActionIgnore}}
	scoped := AutoScope("https://example.com/docs", "", user)
	require.Len(t, scoped, 3)
	assert.Equal(t, user[0], scoped[2])

	f, err := New(scoped)
	require.NoError(t, err)
	assert.False(t, f.ShouldCrawl("https://example.com/docs/changelog/v1"))
}

func TestAutoScope_InvalidURL(t *testing.T) {
	user := []config.Rule{{URL: "*", Action: config.ActionAllow}}
	assert.Equal(t, user, AutoScope("not-a-url", "", user))
}
