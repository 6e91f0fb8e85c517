package goquery

import (
	"context"

	"github.com/fwojciec/docqa"
)

// Ensure LinkCollector implements docqa.LinkCollector at compile time.
var _ docqa.LinkCollector = (*LinkCollector)(nil)

// LinkCollector reads sidebar links from fetched HTML.
type LinkCollector struct {
	Fetcher  docqa.Fetcher
	Selector string
}

// NewLinkCollector creates a LinkCollector reading the sidebar matched by
// selector.
func NewLinkCollector(fetcher docqa.Fetcher, selector string) *LinkCollector {
	return &LinkCollector{Fetcher: fetcher, Selector: selector}
}

// CollectLinks implements docqa.LinkCollector.
func (c *LinkCollector) CollectLinks(ctx context.Context, url string) ([]string, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	links, found, err := SidebarLinks(html, url, c.Selector)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, docqa.Errorf(docqa.ENOTFOUND, "link directory not found, url: %s", url)
	}
	return links, nil
}

// Ensure HeadingExtractor implements docqa.HeadingExtractor at compile time.
var _ docqa.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor reads article outlines from fetched HTML.
type HeadingExtractor struct {
	Fetcher   docqa.Fetcher
	Selectors docqa.Selectors
}

// NewHeadingExtractor creates a new HeadingExtractor.
func NewHeadingExtractor(fetcher docqa.Fetcher, sel docqa.Selectors) *HeadingExtractor {
	return &HeadingExtractor{Fetcher: fetcher, Selectors: sel}
}

// ExtractHeadings implements docqa.HeadingExtractor.
func (e *HeadingExtractor) ExtractHeadings(ctx context.Context, url string) ([]docqa.HeadingRecord, error) {
	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	outline, err := ParseOutline(html, url, e.Selectors)
	if err != nil {
		return nil, err
	}
	if outline == nil {
		return nil, nil
	}
	return outline.Records()
}
