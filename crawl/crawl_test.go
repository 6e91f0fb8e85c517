package crawl_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/crawl"
	"github.com/fwojciec/docqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sidebars(pages map[string][]string) *mock.LinkCollector {
	return &mock.LinkCollector{
		CollectLinksFn: func(_ context.Context, url string) ([]string, error) {
			links, ok := pages[url]
			if !ok {
				return nil, docqa.Errorf(docqa.ENOTFOUND, "link directory not found, url: %s", url)
			}
			return links, nil
		},
	}
}

// headingPerLink returns one record per link titled after the link.
func headingPerLink(visited *[]string) *mock.HeadingExtractor {
	return &mock.HeadingExtractor{
		ExtractHeadingsFn: func(_ context.Context, url string) ([]docqa.HeadingRecord, error) {
			if visited != nil {
				*visited = append(*visited, url)
			}
			return []docqa.HeadingRecord{{Title: url, Href: url + "#h"}}, nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestCrawler_CollectLinks(t *testing.T) {
	t.Parallel()

	t.Run("concatenates links in seed order then sidebar order", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Links: sidebars(map[string][]string{
				"https://d.io/s1": {"https://d.io/a", "https://d.io/b"},
				"https://d.io/s2": {"https://d.io/c", "https://d.io/a"},
			}),
			Logger: discardLogger(),
		}

		links, err := c.CollectLinks(context.Background(), []string{"https://d.io/s1", "https://d.io/s2"})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://d.io/a", "https://d.io/b", "https://d.io/c", "https://d.io/a"}, links)
	})

	t.Run("logs missing sidebar and continues with remaining seeds", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := &crawl.Crawler{
			Links: sidebars(map[string][]string{
				"https://d.io/s2": {"https://d.io/c"},
			}),
			Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		}

		links, err := c.CollectLinks(context.Background(), []string{"https://d.io/missing", "https://d.io/s2"})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://d.io/c"}, links)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "url=https://d.io/missing")
	})

	t.Run("aborts on other collector errors", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Links: &mock.LinkCollector{
				CollectLinksFn: func(context.Context, string) ([]string, error) {
					return nil, errors.New("browser crashed")
				},
			},
			Logger: discardLogger(),
		}

		_, err := c.CollectLinks(context.Background(), []string{"https://d.io/s1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "browser crashed")
		assert.Contains(t, err.Error(), "https://d.io/s1")
	})
}

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("visits every link in order and accumulates records", func(t *testing.T) {
		t.Parallel()

		var visited []string
		c := &crawl.Crawler{
			Links: sidebars(map[string][]string{
				"https://d.io/s1": {"https://d.io/a", "https://d.io/b"},
				"https://d.io/s2": {"https://d.io/c"},
			}),
			Headings: headingPerLink(&visited),
			Logger:   discardLogger(),
		}

		records, err := c.Crawl(context.Background(), []string{"https://d.io/s1", "https://d.io/s2"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://d.io/a", "https://d.io/b", "https://d.io/c"}, visited)
		require.Len(t, records, 3)
		assert.Equal(t, "https://d.io/a", records[0].Title)
		assert.Equal(t, "https://d.io/c", records[2].Title)
	})

	t.Run("reports progress with next link", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Links: sidebars(map[string][]string{
				"https://d.io/s1": {"https://d.io/a", "https://d.io/b"},
			}),
			Headings: headingPerLink(nil),
			Logger:   discardLogger(),
		}

		var events []crawl.ProgressEvent
		_, err := c.Crawl(context.Background(), []string{"https://d.io/s1"}, func(e crawl.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		assert.Equal(t, []crawl.ProgressEvent{
			{Type: crawl.ProgressLinksCollected, Total: 2},
			{Type: crawl.ProgressPageDone, Completed: 1, Total: 2, URL: "https://d.io/a", Next: "https://d.io/b"},
			{Type: crawl.ProgressPageDone, Completed: 2, Total: 2, URL: "https://d.io/b"},
		}, events)
	})

	t.Run("pages without records contribute nothing", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Links: sidebars(map[string][]string{
				"https://d.io/s1": {"https://d.io/empty", "https://d.io/a"},
			}),
			Headings: &mock.HeadingExtractor{
				ExtractHeadingsFn: func(_ context.Context, url string) ([]docqa.HeadingRecord, error) {
					if url == "https://d.io/empty" {
						return nil, nil
					}
					return []docqa.HeadingRecord{{Title: "A"}}, nil
				},
			},
			Logger: discardLogger(),
		}

		records, err := c.Crawl(context.Background(), []string{"https://d.io/s1"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []docqa.HeadingRecord{{Title: "A"}}, records)
	})

	t.Run("extraction failure aborts the crawl and discards records", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Links: sidebars(map[string][]string{
				"https://d.io/s1": {"https://d.io/a", "https://d.io/b"},
			}),
			Headings: &mock.HeadingExtractor{
				ExtractHeadingsFn: func(_ context.Context, url string) ([]docqa.HeadingRecord, error) {
					if url == "https://d.io/b" {
						return nil, errors.New("navigation failed")
					}
					return []docqa.HeadingRecord{{Title: "A"}}, nil
				},
			},
			Logger: discardLogger(),
		}

		records, err := c.Crawl(context.Background(), []string{"https://d.io/s1"}, nil)

		require.Error(t, err)
		assert.Nil(t, records)
		assert.Contains(t, err.Error(), "https://d.io/b")
	})

	t.Run("all seeds missing yields no records", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Links:    sidebars(nil),
			Headings: headingPerLink(nil),
			Logger:   discardLogger(),
		}

		var events []crawl.ProgressEvent
		records, err := c.Crawl(context.Background(), []string{"https://d.io/s1"}, func(e crawl.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, []crawl.ProgressEvent{{Type: crawl.ProgressLinksCollected, Total: 0}}, events)
	})

	t.Run("waits on rate limiter per page host", func(t *testing.T) {
		t.Parallel()

		var domains []string
		c := &crawl.Crawler{
			Links: sidebars(map[string][]string{
				"https://nav.io/s1": {"https://d.io/a"},
			}),
			Headings: headingPerLink(nil),
			RateLimiter: &mock.DomainLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					domains = append(domains, domain)
					return nil
				},
			},
			Logger: discardLogger(),
		}

		_, err := c.Crawl(context.Background(), []string{"https://nav.io/s1"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"nav.io", "d.io"}, domains)
	})

	t.Run("rate limiter cancellation aborts the crawl", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Links:    sidebars(map[string][]string{"https://d.io/s1": {"https://d.io/a"}}),
			Headings: headingPerLink(nil),
			RateLimiter: &mock.DomainLimiter{
				WaitFn: func(context.Context, string) error { return context.Canceled },
			},
			Logger: discardLogger(),
		}

		_, err := c.Crawl(context.Background(), []string{"https://d.io/s1"}, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
