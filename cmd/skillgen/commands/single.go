package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
	"github.com/AmanSikarwar/agent-skills-generator/internal/crawler"
	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
	"github.com/AmanSikarwar/agent-skills-generator/internal/output"
	"github.com/AmanSikarwar/agent-skills-generator/internal/processor"
)

var singleCmd = &cobra.Command{
	Use:   "single <url>",
	Short: "Process a single URL without crawling",
	Long: `Fetch one page, run it through the processing pipeline and write
the resulting skill. Useful for testing cleaning rules on a page before
starting a full crawl.`,
	Args: cobra.ExactArgs(1),
	RunE: runSingle,
}

func init() {
	rootCmd.AddCommand(singleCmd)
	singleCmd.Flags().Bool("stdout", false, "print the result instead of writing files")
}

func runSingle(cmd *cobra.Command, args []string) error {
	initLogger(cmd)

	cfg := loadConfigOrDefault()
	if err := applyOverrides(&cfg, cmd); err != nil {
		return err
	}

	url := args[0]
	logger.Info("processing single url", "url", url)

	html, err := fetchPage(url, &cfg)
	if err != nil {
		return err
	}

	page, err := processor.New(&cfg).Process(url, html)
	if err != nil {
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		fmt.Fprintln(cmd.OutOrStdout(), "--- SKILL.md ---")
		fmt.Fprintln(cmd.OutOrStdout(), page.SkillDoc)
		return nil
	}

	outputDir := effectiveOutput(&cfg)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	skillDir, _, err := output.NewWriter(outputDir, false).Write(page)
	if err != nil {
		return err
	}
	logger.Info("written", "path", skillDir)
	return nil
}

// fetchPage downloads one page with the configured identity and timeout.
func fetchPage(url string, cfg *config.Config) (string, error) {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = crawler.DefaultUserAgent
	}

	client := &http.Client{Timeout: time.Duration(cfg.RequestTimeoutSecs) * time.Second}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	return string(body), nil
}
