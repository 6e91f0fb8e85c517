// Package crawl provides the crawl orchestration: expanding seed pages into
// article links and collecting heading records from every article, one page
// at a time.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/fwojciec/docqa"
)

// Crawler orchestrates a crawl. Pages are visited strictly in order; the
// collector and extractor usually share a single browser page.
type Crawler struct {
	Links    docqa.LinkCollector
	Headings docqa.HeadingExtractor

	// RateLimiter, if set, delays each page visit per domain.
	RateLimiter docqa.DomainLimiter

	// Logger receives non-fatal crawl errors. Defaults to slog.Default().
	Logger *slog.Logger
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressLinksCollected is sent once, after every seed has been expanded.
	ProgressLinksCollected ProgressType = iota
	// ProgressPageDone is sent after each article has been processed.
	ProgressPageDone
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string

	// Next is the article processed after URL, empty for the last one.
	Next string
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl expands seeds into article links and returns the heading records of
// every article, in link order then document order.
//
// A seed without a sidebar is logged and contributes no links. Any other
// error aborts the crawl and discards what was collected so far.
func (c *Crawler) Crawl(ctx context.Context, seeds []string, progress ProgressFunc) ([]docqa.HeadingRecord, error) {
	links, err := c.CollectLinks(ctx, seeds)
	if err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressLinksCollected,
			Total: len(links),
		})
	}

	return c.ExtractAll(ctx, links, progress)
}

// CollectLinks concatenates the sidebar links of each seed in seed order.
func (c *Crawler) CollectLinks(ctx context.Context, seeds []string) ([]string, error) {
	var links []string
	for _, seed := range seeds {
		if err := c.wait(ctx, seed); err != nil {
			return nil, err
		}

		found, err := c.Links.CollectLinks(ctx, seed)
		if docqa.ErrorCode(err) == docqa.ENOTFOUND {
			c.logger().Error(docqa.ErrorMessage(err), "url", seed)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("collecting links from %s: %w", seed, err)
		}
		links = append(links, found...)
	}
	return links, nil
}

// ExtractAll extracts heading records from each link in order.
func (c *Crawler) ExtractAll(ctx context.Context, links []string, progress ProgressFunc) ([]docqa.HeadingRecord, error) {
	var records []docqa.HeadingRecord
	total := len(links)
	for i, link := range links {
		if err := c.wait(ctx, link); err != nil {
			return nil, err
		}

		found, err := c.Headings.ExtractHeadings(ctx, link)
		if err != nil {
			return nil, fmt.Errorf("extracting headings from %s: %w", link, err)
		}
		records = append(records, found...)

		if progress != nil {
			var next string
			if i+1 < total {
				next = links[i+1]
			}
			progress(ProgressEvent{
				Type:      ProgressPageDone,
				Completed: i + 1,
				Total:     total,
				URL:       link,
				Next:      next,
			})
		}
	}
	return records, nil
}

func (c *Crawler) wait(ctx context.Context, rawURL string) error {
	if c.RateLimiter == nil {
		return nil
	}
	var host string
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}
	return c.RateLimiter.Wait(ctx, host)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
