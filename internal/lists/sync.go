package lists

import (
	"context"
	"log/slog"
	"time"

	"github.com/st3v3nmw/baker/internal/blocklist"
)

type Stats struct {
	Sources  int           // sources attempted
	Failed   int           // sources that could not be fetched
	Domains  int           // unique domains in the set afterwards
	Duration time.Duration // time spent fetching & parsing
}

// Consolidate fetches each source in order and adds its domains to set.
// A source that fails to fetch is logged & skipped.
func Consolidate(ctx context.Context, fetcher Fetcher, urls []string, set *blocklist.Set) Stats {
	start := time.Now()
	stats := Stats{Sources: len(urls)}

	for _, url := range urls {
		slog.Info("Fetching source", "url", url)
		content, err := fetcher.Fetch(ctx, url)
		if err != nil {
			slog.Error("Error fetching source", "url", url, "error", err)
			stats.Failed++
			continue
		}

		domains := ExtractDomains(content)
		added := 0
		for _, domain := range domains {
			if set.Add(domain, url) {
				added++
			}
		}

		slog.Info("Parsed source", "url", url, "domains", len(domains), "new", added)
	}

	stats.Domains = set.Len()
	stats.Duration = time.Since(start)
	return stats
}
