// Package commands implements the CLI commands for skillgen.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "skillgen",
	Short: "Generate agent skills from web documentation",
	Long: `Skillgen crawls documentation sites and turns each page into an
agent skill: a directory with a SKILL.md file carrying YAML frontmatter
and the page content converted to clean markdown.

Examples:
  # Crawl a documentation section
  skillgen crawl "https://docs.flutter.dev/ui/*"

  # Crawl a site with settings from skills.yaml
  skillgen crawl https://docs.flutter.dev/get-started

  # Process one page and print the result
  skillgen single https://example.com/docs/api --stdout

  # Create a configuration file
  skillgen init`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "skills.yaml", "path to the configuration file")
	pf.StringP("output", "o", "", "output directory for generated skills (overrides config)")
	pf.CountP("verbose", "v", "increase log verbosity (-v debug, -vv trace)")
	pf.BoolP("quiet", "q", false, "suppress all output except errors")
	pf.String("target", "", "target IDE/agent (overrides config)")
	pf.Bool("user", false, "install skills at user level (overrides config scope)")

	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("output", pf.Lookup("output"))
	_ = viper.BindPFlag("quiet", pf.Lookup("quiet"))

	viper.SetEnvPrefix("SKILLS")
	_ = viper.BindEnv("config")
	_ = viper.BindEnv("output")
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// initLogger configures logging from the global flags. Called at the top
// of every RunE.
func initLogger(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetCount("verbose")
	logger.Init(logger.Options{
		Verbose: verbose,
		Quiet:   viper.GetBool("quiet"),
	})
}

// loadConfig loads the configuration file, failing when it is missing.
func loadConfig() (config.Config, error) {
	path := viper.GetString("config")
	if _, err := os.Stat(path); err != nil {
		return config.Config{}, fmt.Errorf("configuration file not found: %s (run 'skillgen init' to create one)", path)
	}
	return config.Load(path)
}

// loadConfigOrDefault loads the configuration file, falling back to the
// defaults when it is missing or unreadable.
func loadConfigOrDefault() config.Config {
	path := viper.GetString("config")
	if _, err := os.Stat(path); err != nil {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", path, "error", err)
		return config.Default()
	}
	return cfg
}

// applyOverrides folds global flag values into the configuration.
func applyOverrides(cfg *config.Config, cmd *cobra.Command) error {
	if raw, _ := cmd.Flags().GetString("target"); raw != "" {
		target, err := config.ParseTarget(raw)
		if err != nil {
			return err
		}
		cfg.Target = target
	}
	if userLevel, _ := cmd.Flags().GetBool("user"); userLevel {
		cfg.Scope = config.ScopeUser
	}
	return nil
}

// effectiveOutput resolves the output directory: the --output flag wins
// over the configured target/scope mapping.
func effectiveOutput(cfg *config.Config) string {
	if out := viper.GetString("output"); out != "" {
		return out
	}
	return cfg.ResolveOutputPath()
}
