// Package filter implements glob-based URL admission control. Rules come
// from skills.yaml or are synthesized from the starting URL; ignore rules
// always win over allow rules, and the presence of any allow rule switches
// the filter to default-deny.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
	"github.com/AmanSikarwar/agent-skills-generator/internal/urlutil"
)

// Filter matches URLs against compiled allow and ignore glob sets.
// Patterns support `*` (any run of characters, including `/`) and `?`
// (any single character).
type Filter struct {
	allow          []glob.Glob
	ignore         []glob.Glob
	allowPatterns  []string
	ignorePatterns []string
	hasAllowRules  bool
}

// New compiles a filter from rules. Any invalid glob pattern fails the
// whole construction.
func New(rules []config.Rule) (*Filter, error) {
	f := &Filter{}

	for _, rule := range rules {
		g, err := glob.Compile(rule.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", rule.URL, err)
		}

		switch rule.Action {
		case config.ActionAllow:
			f.allow = append(f.allow, g)
			f.allowPatterns = append(f.allowPatterns, rule.URL)
			f.hasAllowRules = true
		case config.ActionIgnore:
			f.ignore = append(f.ignore, g)
			f.ignorePatterns = append(f.ignorePatterns, rule.URL)
		default:
			return nil, fmt.Errorf("unknown rule action %q", rule.Action)
		}
	}

	return f, nil
}

// ShouldCrawl decides whether a URL is admitted:
//
//  1. URL matches an ignore pattern -> reject
//  2. URL matches an allow pattern -> accept
//  3. Allow rules exist but none matched -> reject
//  4. Otherwise -> accept
func (f *Filter) ShouldCrawl(url string) bool {
	for _, g := range f.ignore {
		if g.Match(url) {
			return false
		}
	}

	for _, g := range f.allow {
		if g.Match(url) {
			return true
		}
	}

	return !f.hasAllowRules
}

// HasAllowRules reports whether the filter runs in default-deny mode.
func (f *Filter) HasAllowRules() bool {
	return f.hasAllowRules
}

// AllowRegexps returns the allow patterns as anchored regular expressions,
// suitable for the crawl engine's URL whitelist.
func (f *Filter) AllowRegexps() []*regexp.Regexp {
	return compilePatterns(f.allowPatterns)
}

// IgnoreRegexps returns the ignore patterns as anchored regular
// expressions, suitable for the crawl engine's URL blacklist.
func (f *Filter) IgnoreRegexps() []*regexp.Regexp {
	return compilePatterns(f.ignorePatterns)
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		// GlobToRegex output only contains escapes and .*; a pattern that
		// survived glob compilation always compiles here too.
		if re, err := regexp.Compile(GlobToRegex(p)); err == nil {
			res = append(res, re)
		}
	}
	return res
}

// GlobToRegex converts a glob pattern into an anchored regex string:
// `*` becomes `.*`, `?` becomes `.`, regex metacharacters are escaped.
func GlobToRegex(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern)*2 + 2)
	b.WriteByte('^')

	for _, c := range pattern {
		switch c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		case '.', '+', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}

	b.WriteByte('$')
	return b.String()
}

// Evaluate admits or rejects a URL against rules without a pre-built
// filter. When the rules fail to compile it degrades to substring
// matching with the same precedence as Filter.ShouldCrawl.
func Evaluate(rules []config.Rule, url string) bool {
	if f, err := New(rules); err == nil {
		return f.ShouldCrawl(url)
	}

	hasAllow := false
	for _, rule := range rules {
		if rule.Action == config.ActionIgnore && matchLoose(rule.URL, url) {
			return false
		}
		if rule.Action == config.ActionAllow {
			hasAllow = true
		}
	}
	for _, rule := range rules {
		if rule.Action == config.ActionAllow && matchLoose(rule.URL, url) {
			return true
		}
	}
	return !hasAllow
}

// matchLoose approximates a broken glob by checking whether the URL
// contains the pattern with its wildcards removed.
func matchLoose(pattern, url string) bool {
	return strings.Contains(url, strings.ReplaceAll(pattern, "*", ""))
}

// AutoScope prepends allow rules that confine a crawl to the starting
// URL. For a wildcard input the pattern itself is allowed, with a
// trailing `/*` widened to `/**` so nested paths match; for a plain URL
// the exact page and everything under its path prefix are allowed.
// Either way the synthesized allow rules switch the filter to
// default-deny, which rejects all other paths on the host without an
// ignore rule (an ignore would take precedence and swallow the allowed
// pattern too).
func AutoScope(baseURL, pattern string, rules []config.Rule) []config.Rule {
	if urlutil.DomainWithScheme(baseURL) == "" {
		return rules
	}

	var scoped []config.Rule
	if pattern != "" {
		recursive := pattern
		if strings.HasSuffix(pattern, "/*") {
			recursive = pattern + "*"
		}
		scoped = []config.Rule{
			{URL: baseURL, Action: config.ActionAllow},
			{URL: recursive, Action: config.ActionAllow},
		}
	} else {
		normalized := baseURL
		if !strings.HasSuffix(normalized, "/") {
			normalized += "/"
		}
		scoped = []config.Rule{
			{URL: baseURL, Action: config.ActionAllow},
			{URL: normalized + "**", Action: config.ActionAllow},
		}
	}

	return append(scoped, rules...)
}
