package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

// Compile-time interface verification.
var (
	_ docqa.LinkCollector    = (*LinkCollector)(nil)
	_ docqa.HeadingExtractor = (*HeadingExtractor)(nil)
	_ docqa.SheetWriter      = (*SheetWriter)(nil)
	_ docqa.DomainLimiter    = (*DomainLimiter)(nil)
)

// LinkCollector is a mock implementation of docqa.LinkCollector.
type LinkCollector struct {
	CollectLinksFn func(ctx context.Context, url string) ([]string, error)
}

func (c *LinkCollector) CollectLinks(ctx context.Context, url string) ([]string, error) {
	return c.CollectLinksFn(ctx, url)
}

// HeadingExtractor is a mock implementation of docqa.HeadingExtractor.
type HeadingExtractor struct {
	ExtractHeadingsFn func(ctx context.Context, url string) ([]docqa.HeadingRecord, error)
}

func (e *HeadingExtractor) ExtractHeadings(ctx context.Context, url string) ([]docqa.HeadingRecord, error) {
	return e.ExtractHeadingsFn(ctx, url)
}

// SheetWriter is a mock implementation of docqa.SheetWriter.
type SheetWriter struct {
	WriteSheetFn func(ctx context.Context, sheet *docqa.Sheet) error
}

func (w *SheetWriter) WriteSheet(ctx context.Context, sheet *docqa.Sheet) error {
	return w.WriteSheetFn(ctx, sheet)
}

// DomainLimiter is a mock implementation of docqa.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
