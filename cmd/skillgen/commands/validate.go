package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Check the configuration file for valid YAML syntax, correct field
types and well-formed rule patterns.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolP("show", "s", false, "show the parsed configuration")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	initLogger(cmd)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyOverrides(&cfg, cmd); err != nil {
		return err
	}

	logger.Info("configuration is valid")

	if show, _ := cmd.Flags().GetBool("show"); show {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n--- Parsed Configuration ---")
		fmt.Fprintf(out, "Target: %s\n", cfg.Target)
		fmt.Fprintf(out, "Scope: %s\n", cfg.Scope)
		fmt.Fprintf(out, "Output: %s\n", cfg.ResolveOutputPath())
		fmt.Fprintf(out, "Delay: %dms\n", cfg.DelayMs)
		fmt.Fprintf(out, "Max Depth: %d\n", cfg.MaxDepth)
		fmt.Fprintf(out, "Respect robots.txt: %t\n", cfg.RespectRobotsTxt)
		fmt.Fprintf(out, "Subdomains: %t\n", cfg.Subdomains)
		fmt.Fprintf(out, "Concurrency: %d\n", cfg.Concurrency)
		fmt.Fprintf(out, "Rules: %d defined\n", len(cfg.Rules))
		for i, rule := range cfg.Rules {
			fmt.Fprintf(out, "  %d. %s -> %s\n", i+1, rule.URL, rule.Action)
		}
		fmt.Fprintf(out, "Remove selectors: %d defined\n", len(cfg.RemoveSelectors))
	}

	return nil
}
