package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Long: `Create a skills.yaml configuration file. By default a short
interactive wizard asks for the target agent, scope and crawl settings;
use --no-interactive to write the stock defaults.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	flags := initCmd.Flags()
	flags.BoolP("force", "f", false, "overwrite an existing configuration file")
	flags.StringP("path", "p", "skills.yaml", "where to create the configuration file")
	flags.Bool("no-interactive", false, "write the default configuration without prompting")
}

func runInit(cmd *cobra.Command, _ []string) error {
	initLogger(cmd)

	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	content := defaultConfigYAML()
	if !noInteractive {
		var err error
		content, err = interactiveInit(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}

	logger.Info("created configuration file", "path", path)
	logger.Info("edit this file to customize crawling behavior, then run: skillgen crawl <URL>")
	return nil
}

// interactiveInit walks the user through the main settings and returns
// the rendered configuration.
func interactiveInit(in io.Reader, out io.Writer) (string, error) {
	reader := bufio.NewReader(in)

	targets := []struct {
		label  string
		target config.Target
	}{
		{"Custom (specify output path)", config.TargetCustom},
		{"GitHub Copilot", config.TargetGitHubCopilot},
		{"Claude Code", config.TargetClaudeCode},
		{"Cursor", config.TargetCursor},
		{"Antigravity (Gemini)", config.TargetAntigravity},
		{"OpenAI Codex", config.TargetOpenAICodex},
		{"OpenCode", config.TargetOpencode},
	}

	fmt.Fprintln(out, "Select target IDE/agent:")
	for i, t := range targets {
		fmt.Fprintf(out, "  %d. %s\n", i+1, t.label)
	}
	choice := promptInt(reader, out, "Target", 1, 1, len(targets))
	target := targets[choice-1].target

	fmt.Fprintln(out, "Install skills at project or user level?")
	fmt.Fprintln(out, "  1. Project (install to current directory)")
	fmt.Fprintln(out, "  2. User (install to home directory)")
	scope := config.ScopeProject
	if promptInt(reader, out, "Scope", 1, 1, 2) == 2 {
		scope = config.ScopeUser
	}

	outputDir := config.DefaultOutputDir
	if target == config.TargetCustom {
		outputDir = promptString(reader, out, "Output directory", config.DefaultOutputDir)
	}

	delayMs := promptInt(reader, out, "Request delay in milliseconds", config.DefaultDelayMs, 0, 1<<31)
	maxDepth := promptInt(reader, out, "Maximum crawl depth", config.DefaultMaxDepth, 0, 1<<31)
	concurrency := promptInt(reader, out, "Concurrency limit", config.DefaultConcurrency, 1, 1<<31)

	return renderConfigYAML(target, scope, outputDir, delayMs, maxDepth, concurrency), nil
}

// promptString reads one line, returning def on empty input or EOF.
func promptString(reader *bufio.Reader, out io.Writer, label, def string) string {
	fmt.Fprintf(out, "%s [%s]: ", label, def)
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return def
	}
	if line == "" {
		return def
	}
	return line
}

// promptInt reads an integer, returning def on empty, invalid or
// out-of-range input.
func promptInt(reader *bufio.Reader, out io.Writer, label string, def, min, max int) int {
	raw := promptString(reader, out, label, strconv.Itoa(def))
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return def
	}
	return n
}

// defaultConfigYAML is the non-interactive template.
func defaultConfigYAML() string {
	return renderConfigYAML(
		config.TargetCustom,
		config.ScopeProject,
		config.DefaultOutputDir,
		config.DefaultDelayMs,
		config.DefaultMaxDepth,
		config.DefaultConcurrency,
	)
}

func renderConfigYAML(target config.Target, scope config.Scope, outputDir string, delayMs, maxDepth, concurrency int) string {
	return fmt.Sprintf(`# Agent Skills Generator Configuration

# Target IDE/agent for skills generation
# Supported targets: github-copilot, claude-code, cursor, antigravity, openai-codex, opencode, custom
target: %s

# Scope for skills installation
# - project: Install to project directory (e.g., .cursor/skills/)
# - user: Install to user home directory (e.g., ~/.cursor/skills/)
scope: %s

# Output directory for generated skills (only used when target is "custom")
output: %s

# Custom User-Agent string
# user_agent: "MyBot/1.0"

# Delay between requests in milliseconds (polite crawling)
delay_ms: %d

# Maximum crawl depth
max_depth: %d

# Request timeout in seconds
request_timeout_secs: %d

# Respect robots.txt
respect_robots_txt: true

# Allow subdomains
subdomains: false

# Concurrency limit for parallel page processing
concurrency: %d

# URL filtering rules (ignore rules always win over allow rules)
rules:
  # Example: Allow only documentation pages
  # - url: "*/docs/*"
  #   action: allow

  # Example: Ignore API internals
  # - url: "*/api/internal/*"
  #   action: ignore

  # Example: Ignore login/auth pages
  # - url: "*/login*"
  #   action: ignore
  # - url: "*/auth/*"
  #   action: ignore

# CSS selectors for elements to remove from content
# These are already included by default, add more if needed:
# remove_selectors:
#   - ".custom-sidebar"
#   - "#ad-container"
`, target, scope, outputDir, delayMs, maxDepth, config.DefaultRequestTimeoutSecs, concurrency)
}
