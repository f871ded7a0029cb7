package crawler

import (
	"fmt"
	"sync/atomic"
)

// Stats tracks a crawl session. Counters are updated atomically and
// independently; a summary read may see a torn snapshot across fields
// mid-crawl, final totals are exact.
type Stats struct {
	// Visited counts pages received from the crawl engine.
	Visited atomic.Int64
	// Processed counts pages written as skills.
	Processed atomic.Int64
	// Skipped counts pages rejected by the URL filter or resume check.
	Skipped atomic.Int64
	// Failed counts pages whose fetch or processing failed.
	Failed atomic.Int64
}

// Summary renders the counters in a single line.
func (s *Stats) Summary() string {
	return fmt.Sprintf("Crawl complete: %d visited, %d processed, %d skipped, %d failed",
		s.Visited.Load(), s.Processed.Load(), s.Skipped.Load(), s.Failed.Load())
}
