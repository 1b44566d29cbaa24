// Package checker orchestrates one venue scan: search queries with
// fallbacks, dedup, recency and price-range filtering.
package checker

import (
	"context"
	"log/slog"
	"time"

	"github.com/ezouu/reddit-price-checker/internal/config"
	"github.com/ezouu/reddit-price-checker/internal/domain"
	"github.com/ezouu/reddit-price-checker/internal/query"
)

type Checker struct {
	Collector domain.Collector
	Extractor domain.PriceExtractor
	Log       *slog.Logger

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func New(c domain.Collector, e domain.PriceExtractor, log *slog.Logger) *Checker {
	return &Checker{Collector: c, Extractor: e, Log: log}
}

// ScanVenue searches one venue for sale posts of cfg.Item. Query order:
// the raw item first, then each variation only while nothing has been
// found, then a broad model-token search as a last resort. Per-query
// failures are logged and skipped, never fatal.
func (c *Checker) ScanVenue(ctx context.Context, venue string, cfg config.Config) []domain.Listing {
	timeFilter := query.TimeFilter(cfg.DaysBack)
	seen := make(map[string]bool)
	var results []domain.Listing

	run := func(q string) {
		posts, err := c.Collector.SearchPosts(ctx, venue, q, timeFilter, cfg.Limit)
		if err != nil {
			c.Log.Error("Search failed", "venue", venue, "query", q, "err", err)
			return
		}
		results = c.process(ctx, venue, posts, cfg, seen, results)
	}

	run(query.Build(cfg.Item))

	for _, term := range query.Variations(cfg.Item) {
		if len(seen) > 0 {
			break
		}
		run(query.Build(term))
	}

	if len(seen) == 0 {
		if model := query.ModelToken(cfg.Item); model != "" {
			c.Log.Info("No results, trying broader search", "venue", venue)
			run(query.BuildBroad(model))
		}
	}

	return results
}

func (c *Checker) process(ctx context.Context, venue string, posts []domain.Post, cfg config.Config, seen map[string]bool, results []domain.Listing) []domain.Listing {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	window := time.Duration(cfg.DaysBack) * 24 * time.Hour

	for _, p := range posts {
		if seen[p.ID] {
			continue
		}

		created := time.Unix(int64(p.CreatedUTC), 0)
		if now.Sub(created) > window {
			continue
		}

		price, ok, err := c.Extractor.ExtractPrice(ctx, p.Title, p.Body, cfg.Item)
		if err != nil {
			c.Log.Error("Price extraction failed", "post", p.ID, "err", err)
			continue
		}
		if !ok {
			continue
		}

		if price < cfg.MinPrice || price > cfg.MaxPrice {
			c.Log.Info("Skipped (price outside range)", "title", p.Title, "price", price, "min", cfg.MinPrice, "max", cfg.MaxPrice)
			continue
		}

		seen[p.ID] = true
		results = append(results, domain.Listing{
			Venue:      venue,
			Title:      p.Title,
			URL:        p.URL,
			Date:       created.Format("2006-01-02 15:04:05"),
			Author:     p.Author,
			Price:      price,
			CreatedUTC: p.CreatedUTC,
		})
		c.Log.Info("Found listing", "title", p.Title, "price", price)
	}
	return results
}
