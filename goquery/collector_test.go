package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/goquery"
	"github.com/fwojciec/docqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := pages[url]
			if !ok {
				return "", errors.New("HTTP 404 for " + url)
			}
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestLinkCollector_CollectLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns sidebar links", func(t *testing.T) {
		t.Parallel()

		fetcher := staticFetcher(map[string]string{
			"https://d.io/nav": `<div class="sidebar-menu"><a href="/a">A</a><a href="/b">B</a></div>`,
		})
		c := goquery.NewLinkCollector(fetcher, ".sidebar-menu")

		links, err := c.CollectLinks(context.Background(), "https://d.io/nav")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://d.io/a", "https://d.io/b"}, links)
	})

	t.Run("returns ENOTFOUND when sidebar is missing", func(t *testing.T) {
		t.Parallel()

		fetcher := staticFetcher(map[string]string{"https://d.io/nav": `<p>no menu</p>`})
		c := goquery.NewLinkCollector(fetcher, ".sidebar-menu")

		_, err := c.CollectLinks(context.Background(), "https://d.io/nav")

		assert.Equal(t, docqa.ENOTFOUND, docqa.ErrorCode(err))
		assert.Contains(t, docqa.ErrorMessage(err), "https://d.io/nav")
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		c := goquery.NewLinkCollector(staticFetcher(nil), ".sidebar-menu")

		_, err := c.CollectLinks(context.Background(), "https://d.io/nav")

		require.Error(t, err)
		assert.Equal(t, docqa.EINTERNAL, docqa.ErrorCode(err))
	})
}

func TestHeadingExtractor_ExtractHeadings(t *testing.T) {
	t.Parallel()

	t.Run("composes records for the page", func(t *testing.T) {
		t.Parallel()

		url := "https://docs.agora.io/cn/Video/guide?platform=iOS"
		fetcher := staticFetcher(map[string]string{
			url: `<h1 class="page-title">Guide</h1>
<div class="article-page-container"><h2 id="a">A</h2><h3 id="b">B</h3></div>`,
		})
		e := goquery.NewHeadingExtractor(fetcher, docqa.DefaultSelectors)

		records, err := e.ExtractHeadings(context.Background(), url)

		require.NoError(t, err)
		assert.Equal(t, []docqa.HeadingRecord{
			{
				Title:    "Guide - a - 视频通话",
				Href:     "https://docs.agora.io/cn/Video/guide?platform=iOS#a",
				Language: "cn",
				Product:  "Video Call",
				Platform: "iOS",
			},
			{
				Title:    "Guide - a - b - 视频通话",
				Href:     "https://docs.agora.io/cn/Video/guide?platform=iOS#b",
				Language: "cn",
				Product:  "Video Call",
				Platform: "iOS",
			},
		}, records)
	})

	t.Run("skips malformed articles silently", func(t *testing.T) {
		t.Parallel()

		fetcher := staticFetcher(map[string]string{"https://d.io/a": `<p>draft</p>`})
		e := goquery.NewHeadingExtractor(fetcher, docqa.DefaultSelectors)

		records, err := e.ExtractHeadings(context.Background(), "https://d.io/a")

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
