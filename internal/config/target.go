package config

import "fmt"

// Target identifies the coding agent or IDE whose skill directory
// convention generated skills are installed under.
type Target string

const (
	TargetGitHubCopilot Target = "github-copilot"
	TargetClaudeCode    Target = "claude-code"
	TargetCursor        Target = "cursor"
	TargetAntigravity   Target = "antigravity"
	TargetOpenAICodex   Target = "openai-codex"
	TargetOpencode      Target = "opencode"
	TargetCustom        Target = "custom"
)

// Targets lists all valid targets in display order.
func Targets() []Target {
	return []Target{
		TargetGitHubCopilot,
		TargetClaudeCode,
		TargetCursor,
		TargetAntigravity,
		TargetOpenAICodex,
		TargetOpencode,
		TargetCustom,
	}
}

// targetAliases maps shorthand spellings to canonical targets.
var targetAliases = map[string]Target{
	"github-copilot": TargetGitHubCopilot,
	"copilot":        TargetGitHubCopilot,
	"claude-code":    TargetClaudeCode,
	"claude":         TargetClaudeCode,
	"cursor":         TargetCursor,
	"antigravity":    TargetAntigravity,
	"gemini":         TargetAntigravity,
	"openai-codex":   TargetOpenAICodex,
	"codex":          TargetOpenAICodex,
	"opencode":       TargetOpencode,
	"custom":         TargetCustom,
	"":               TargetCustom,
}

// ParseTarget resolves a target name or alias to its canonical form.
func ParseTarget(s string) (Target, error) {
	if t, ok := targetAliases[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown target %q (valid targets: github-copilot, claude-code, cursor, antigravity, openai-codex, opencode, custom)", s)
}

// ProjectDir returns the project-relative skills directory for the target.
func (t Target) ProjectDir() string {
	switch t {
	case TargetGitHubCopilot:
		return ".github/skills"
	case TargetClaudeCode:
		return ".claude/skills"
	case TargetCursor:
		return ".cursor/skills"
	case TargetAntigravity:
		return ".gemini/skills"
	case TargetOpenAICodex:
		return ".codex/skills"
	case TargetOpencode:
		return ".opencode/skills"
	default:
		return DefaultOutputDir
	}
}

// UserDir returns the home-relative skills directory for the target.
func (t Target) UserDir() string {
	switch t {
	case TargetGitHubCopilot:
		return ".copilot/skills"
	case TargetClaudeCode:
		return ".claude/skills"
	case TargetCursor:
		return ".cursor/skills"
	case TargetAntigravity:
		return ".gemini/skills"
	case TargetOpenAICodex:
		return ".codex/skills"
	case TargetOpencode:
		return ".config/opencode/skills"
	default:
		return DefaultOutputDir
	}
}

// Scope selects where a target's skills directory is rooted.
type Scope string

const (
	// ScopeProject installs skills relative to the working directory.
	ScopeProject Scope = "project"
	// ScopeUser installs skills under the user's home directory.
	ScopeUser Scope = "user"
)
