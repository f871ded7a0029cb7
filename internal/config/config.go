// Package config handles loading and validating the skills.yaml
// configuration file which defines crawl rules, output targets and
// content-cleaning settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultOutputDir is where generated skills land for the custom target.
	DefaultOutputDir = ".agent/skills"

	// DefaultDelayMs is the polite-crawling delay between requests.
	DefaultDelayMs = 100

	// DefaultMaxDepth bounds link-following from the starting URL.
	DefaultMaxDepth = 25

	// DefaultRequestTimeoutSecs is the per-request timeout.
	DefaultRequestTimeoutSecs = 30

	// DefaultConcurrency bounds parallel page processing.
	DefaultConcurrency = 4
)

// Action is what the filter does with a matching URL.
type Action string

const (
	// ActionAllow admits matching URLs.
	ActionAllow Action = "allow"
	// ActionIgnore rejects matching URLs. Ignore wins over allow.
	ActionIgnore Action = "ignore"
)

// Rule is a single URL admission directive: a glob pattern plus an action.
// `*` matches any run of characters, `?` matches a single character.
type Rule struct {
	URL         string `yaml:"url" validate:"required"`
	Action      Action `yaml:"action" validate:"oneof=allow ignore"`
	ContentType string `yaml:"content_type,omitempty"`
}

// Config mirrors the skills.yaml file format.
type Config struct {
	// Output directory for generated skills (used when Target is custom).
	Output string `yaml:"output"`

	// UserAgent overrides the default crawler User-Agent.
	UserAgent string `yaml:"user_agent,omitempty"`

	// DelayMs is the delay between requests in milliseconds.
	DelayMs int `yaml:"delay_ms" validate:"gte=0"`

	// MaxDepth is the maximum crawl depth.
	MaxDepth int `yaml:"max_depth" validate:"gte=0"`

	// RequestTimeoutSecs is the request timeout in seconds.
	RequestTimeoutSecs int `yaml:"request_timeout_secs" validate:"gte=1"`

	// RespectRobotsTxt toggles robots.txt compliance.
	RespectRobotsTxt bool `yaml:"respect_robots_txt"`

	// Subdomains allows the crawl to leave the exact starting host.
	Subdomains bool `yaml:"subdomains"`

	// Concurrency limits parallel page processing.
	Concurrency int `yaml:"concurrency" validate:"gte=1"`

	// Rules are the URL admission directives, in source order.
	Rules []Rule `yaml:"rules" validate:"dive"`

	// RemoveSelectors lists CSS selectors for extra elements to remove
	// from page content, on top of the built-in noise taxonomy.
	RemoveSelectors []string `yaml:"remove_selectors"`

	// IconNames extends the scrubber's icon-ligature vocabulary.
	IconNames []string `yaml:"icon_names,omitempty"`

	// ScrubPatterns adds operator-maintained regex lines to the
	// markdown scrubber's denylist.
	ScrubPatterns []string `yaml:"scrub_patterns,omitempty"`

	// Target selects the IDE/agent whose skill directory convention to use.
	Target Target `yaml:"target"`

	// Scope selects project-level or user-level installation.
	Scope Scope `yaml:"scope"`
}

// Default returns the configuration used when no skills.yaml exists.
func Default() Config {
	return Config{
		Output:             DefaultOutputDir,
		DelayMs:            DefaultDelayMs,
		MaxDepth:           DefaultMaxDepth,
		RequestTimeoutSecs: DefaultRequestTimeoutSecs,
		RespectRobotsTxt:   true,
		Concurrency:        DefaultConcurrency,
		RemoveSelectors:    defaultRemoveSelectors(),
		Target:             TargetCustom,
		Scope:              ScopeProject,
	}
}

// defaultRemoveSelectors lists elements that typically carry navigation,
// ads or other non-content noise.
func defaultRemoveSelectors() []string {
	return []string{
		"nav", "footer", "header", "script", "style", "noscript", "iframe",
		".toc", ".table-of-contents", ".sidebar", ".navigation", ".nav",
		".menu", ".breadcrumb", ".breadcrumbs",
		".ads", ".advertisement", ".cookie-banner", ".cookie-consent",
		"[role='navigation']", "[role='banner']", "[role='contentinfo']",
	}
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- CLI tool reads user-specified config
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// FromYAML parses a configuration from YAML, applying defaults for any
// omitted fields and validating the result.
func FromYAML(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and rule actions.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	target, err := ParseTarget(string(c.Target))
	if err != nil {
		return err
	}
	c.Target = target
	if c.Scope != ScopeProject && c.Scope != ScopeUser {
		return fmt.Errorf("unknown scope %q (valid scopes: project, user)", c.Scope)
	}
	return nil
}

// HasAllowRules reports whether any allow rule is configured. Presence of
// allow rules switches URL filtering to default-deny.
func (c *Config) HasAllowRules() bool {
	for _, r := range c.Rules {
		if r.Action == ActionAllow {
			return true
		}
	}
	return false
}

// ResolveOutputPath returns the effective output directory for the
// configured target and scope. The custom target uses Output as-is; other
// targets map to their conventional project or home directory.
func (c *Config) ResolveOutputPath() string {
	if c.Target == TargetCustom || c.Target == "" {
		if c.Output != "" {
			return c.Output
		}
		return DefaultOutputDir
	}

	if c.Scope == ScopeUser {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, c.Target.UserDir())
		}
	}
	return c.Target.ProjectDir()
}
