// Package crawler drives the crawl engine and fans fetched pages out to
// the processing pipeline. The engine handles discovery, politeness and
// robots.txt; admitted pages flow through a bounded event channel into a
// semaphore-limited pool of processing goroutines.
package crawler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/AmanSikarwar/agent-skills-generator/internal/config"
	"github.com/AmanSikarwar/agent-skills-generator/internal/filter"
	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
	"github.com/AmanSikarwar/agent-skills-generator/internal/output"
	"github.com/AmanSikarwar/agent-skills-generator/internal/processor"
	"github.com/AmanSikarwar/agent-skills-generator/internal/urlutil"
)

// DefaultUserAgent identifies the crawler when the configuration does
// not override it.
const DefaultUserAgent = "AgentSkillsGenerator/1.0 (+https://github.com/AmanSikarwar/agent-skills-generator)"

// Options tune a single crawl session beyond the configuration file.
type Options struct {
	// MaxPages caps the number of fetched pages; 0 means unlimited.
	MaxPages int
	// Resume skips skills that already exist in the output directory.
	Resume bool
}

// pageEvent is one fetched page handed from the engine to the
// processing pool.
type pageEvent struct {
	url  string
	body []byte
}

// Crawler crawls a site and writes one skill per admitted page.
type Crawler struct {
	cfg    config.Config
	filter *filter.Filter
	proc   *processor.Processor
	writer *output.Writer
	stats  *Stats
	opts   Options
}

// New builds a crawler. The configured rules are compiled eagerly so an
// invalid pattern fails before any network traffic.
func New(cfg config.Config, outputDir string, opts Options) (*Crawler, error) {
	f, err := filter.New(cfg.Rules)
	if err != nil {
		return nil, err
	}

	return &Crawler{
		cfg:    cfg,
		filter: f,
		proc:   processor.New(&cfg),
		writer: output.NewWriter(outputDir, opts.Resume),
		stats:  &Stats{},
		opts:   opts,
	}, nil
}

// Stats returns the session counters.
func (c *Crawler) Stats() *Stats {
	return c.stats
}

// Crawl fetches startURL and everything the rules admit, writing skills
// as pages arrive. Cancelling ctx stops new fetches and scheduling;
// pages already being processed run to completion. The returned stats
// are final once Crawl returns.
func (c *Crawler) Crawl(ctx context.Context, startURL string) (*Stats, error) {
	logger.Info("starting crawl", "url", startURL, "output", c.writer.Dir())

	if err := os.MkdirAll(c.writer.Dir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", c.writer.Dir(), err)
	}

	collector, err := c.newCollector(ctx, startURL)
	if err != nil {
		return nil, err
	}

	events := make(chan pageEvent, c.cfg.Concurrency*2)
	done := make(chan struct{})
	go c.dispatch(ctx, events, done)

	collector.OnResponse(func(r *colly.Response) {
		events <- pageEvent{url: r.Request.URL.String(), body: r.Body}
	})

	collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
		// Engine-level filters decide; errors here are expected noise
		// (already visited, filtered, off-domain).
		_ = e.Request.Visit(e.Attr("href"))
	})

	collector.OnError(func(r *colly.Response, err error) {
		logger.Warn("fetch failed", "url", r.Request.URL.String(), "error", err)
		c.stats.Failed.Add(1)
	})

	if err := collector.Visit(startURL); err != nil {
		close(events)
		<-done
		return nil, fmt.Errorf("failed to start crawl of %s: %w", startURL, err)
	}

	collector.Wait()

	// Closing the event channel is the completion signal for the
	// dispatcher; it drains remaining pages and waits for in-flight
	// processing.
	close(events)
	<-done

	logger.Info(c.stats.Summary())
	return c.stats, nil
}

// newCollector configures the crawl engine: identity, depth, politeness,
// domain scope and rule-derived URL pre-filters.
func (c *Crawler) newCollector(ctx context.Context, startURL string) (*colly.Collector, error) {
	userAgent := c.cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	collectorOpts := []colly.CollectorOption{
		colly.UserAgent(userAgent),
		colly.MaxDepth(c.cfg.MaxDepth),
		colly.Async(true),
	}
	if !c.cfg.RespectRobotsTxt {
		collectorOpts = append(collectorOpts, colly.IgnoreRobotsTxt())
	}
	if !c.cfg.Subdomains {
		domain := urlutil.ExtractDomain(startURL)
		if domain == "" {
			return nil, fmt.Errorf("cannot determine domain of %s", startURL)
		}
		collectorOpts = append(collectorOpts, colly.AllowedDomains(domain))
	}

	// Rule-derived regexes keep the engine from even fetching pages the
	// filter would drop. Ignore rules are enforced either way; allow
	// rules become a whitelist when present.
	if ignore := c.filter.IgnoreRegexps(); len(ignore) > 0 {
		collectorOpts = append(collectorOpts, colly.DisallowedURLFilters(ignore...))
	}
	if allow := c.filter.AllowRegexps(); len(allow) > 0 {
		collectorOpts = append(collectorOpts, colly.URLFilters(allow...))
	}

	collector := colly.NewCollector(collectorOpts...)
	collector.SetRequestTimeout(time.Duration(c.cfg.RequestTimeoutSecs) * time.Second)

	if err := collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: c.cfg.Concurrency,
		Delay:       time.Duration(c.cfg.DelayMs) * time.Millisecond,
	}); err != nil {
		return nil, fmt.Errorf("failed to configure rate limit: %w", err)
	}

	var requested atomic.Int64
	collector.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		if c.opts.MaxPages > 0 && requested.Add(1) > int64(c.opts.MaxPages) {
			r.Abort()
		}
	})

	return collector, nil
}

// dispatch is the coordinator between the engine and the processing
// pool. It applies the URL filter, then hands each admitted page to its
// own goroutine gated by a channel semaphore.
func (c *Crawler) dispatch(ctx context.Context, events <-chan pageEvent, done chan<- struct{}) {
	defer close(done)

	sem := make(chan struct{}, c.cfg.Concurrency)
	var wg sync.WaitGroup

	for ev := range events {
		c.stats.Visited.Add(1)

		if ctx.Err() != nil {
			c.stats.Skipped.Add(1)
			continue
		}
		if !c.filter.ShouldCrawl(ev.url) {
			logger.Debug("skipping url due to rules", "url", ev.url)
			c.stats.Skipped.Add(1)
			continue
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(ev pageEvent) {
			defer wg.Done()
			defer func() { <-sem }()
			c.processPage(ev)
		}(ev)
	}

	wg.Wait()
}

// processPage runs one page through the pipeline and writes the result.
func (c *Crawler) processPage(ev pageEvent) {
	if len(ev.body) == 0 {
		logger.Error("empty page body", "url", ev.url)
		c.stats.Failed.Add(1)
		return
	}

	page, err := c.proc.Process(ev.url, string(ev.body))
	if err != nil {
		logger.Error("failed to process page", "url", ev.url, "error", err)
		c.stats.Failed.Add(1)
		return
	}

	skillDir, skipped, err := c.writer.Write(page)
	if err != nil {
		logger.Error("failed to write skill", "url", ev.url, "error", err)
		c.stats.Failed.Add(1)
		return
	}
	if skipped {
		c.stats.Skipped.Add(1)
		return
	}

	logger.Info("processed", "url", ev.url, "skill", skillDir)
	c.stats.Processed.Add(1)
}
