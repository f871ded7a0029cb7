package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
	"github.com/AmanSikarwar/agent-skills-generator/internal/output"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all generated skill files",
	Long: `Remove every skill directory from the output directory. Only
directories containing a SKILL.md file are removed, so manually created
files survive.`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolP("force", "f", false, "don't ask for confirmation")
}

func runClean(cmd *cobra.Command, _ []string) error {
	initLogger(cmd)

	cfg := loadConfigOrDefault()
	if err := applyOverrides(&cfg, cmd); err != nil {
		return err
	}
	outputDir := effectiveOutput(&cfg)

	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		logger.Info("output directory does not exist", "path", outputDir)
		return nil
	}

	if force, _ := cmd.Flags().GetBool("force"); !force {
		fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to clean all skills in %s? [y/N] ", outputDir)

		answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && answer == "" {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			logger.Info("aborted")
			return nil
		}
	}

	count, err := output.CleanDir(outputDir)
	if err != nil {
		return err
	}
	logger.Info("removed skill directories", "count", count)
	return nil
}
