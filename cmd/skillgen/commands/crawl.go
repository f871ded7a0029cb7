package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AmanSikarwar/agent-skills-generator/internal/crawler"
	"github.com/AmanSikarwar/agent-skills-generator/internal/filter"
	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
	"github.com/AmanSikarwar/agent-skills-generator/internal/urlutil"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <url>...",
	Short: "Crawl websites and generate skill files",
	Long: `Crawl one or more starting URLs and write a skill per page.

A starting URL may contain glob wildcards; the crawl is automatically
scoped to the URL's path prefix (or the explicit pattern) so it does not
wander across the whole site.

Examples:
  skillgen crawl https://docs.flutter.dev/get-started
  skillgen crawl "https://docs.flutter.dev/ui/*" --max-pages 50
  skillgen crawl https://example.com/docs --resume`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)

	flags := crawlCmd.Flags()
	flags.IntP("max-pages", "m", 0, "maximum number of pages to crawl (0 = unlimited)")
	flags.IntP("delay", "d", 0, "crawl delay in milliseconds (overrides config)")
	flags.Int("depth", 0, "maximum crawl depth (overrides config)")
	flags.Bool("subdomains", false, "follow subdomains")
	flags.Bool("dry-run", false, "show what would be crawled without fetching anything")
	flags.Bool("resume", false, "continue a previous crawl, skipping existing skills")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	initLogger(cmd)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfigOrDefault()
	if err := applyOverrides(&cfg, cmd); err != nil {
		return err
	}

	if cmd.Flags().Changed("delay") {
		cfg.DelayMs, _ = cmd.Flags().GetInt("delay")
	}
	if cmd.Flags().Changed("depth") {
		cfg.MaxDepth, _ = cmd.Flags().GetInt("depth")
	}
	if subdomains, _ := cmd.Flags().GetBool("subdomains"); subdomains {
		cfg.Subdomains = true
	}

	maxPages, _ := cmd.Flags().GetInt("max-pages")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	resume, _ := cmd.Flags().GetBool("resume")

	outputDir := effectiveOutput(&cfg)
	logger.Info("output directory", "path", outputDir)
	if dryRun {
		logger.Info("dry run mode, no files will be written")
	}

	for _, rawURL := range args {
		base, pattern := urlutil.ParseURLPattern(rawURL)
		logger.Info("crawling", "url", rawURL, "base", base)

		crawlCfg := cfg
		crawlCfg.Rules = filter.AutoScope(base, pattern, cfg.Rules)

		if dryRun {
			logger.Info("would crawl", "url", base)
			logger.Info("active rules:")
			for i, rule := range crawlCfg.Rules {
				logger.Info("rule", "index", i+1, "url", rule.URL, "action", rule.Action)
			}
			continue
		}

		c, err := crawler.New(crawlCfg, outputDir, crawler.Options{
			MaxPages: maxPages,
			Resume:   resume,
		})
		if err != nil {
			return err
		}

		if _, err := c.Crawl(ctx, base); err != nil {
			logger.Error("crawl failed", "url", base, "error", err)
		}

		if ctx.Err() != nil {
			logger.Warn("crawl interrupted")
			break
		}
	}

	return nil
}
