// Package slog provides logging decorators for docqa services using the
// standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docqa"
)

// Ensure LoggingLinkCollector implements docqa.LinkCollector.
var _ docqa.LinkCollector = (*LoggingLinkCollector)(nil)

// LoggingLinkCollector wraps a LinkCollector with logging.
type LoggingLinkCollector struct {
	next   docqa.LinkCollector
	logger *slog.Logger
}

// NewLoggingLinkCollector creates a new LoggingLinkCollector.
func NewLoggingLinkCollector(next docqa.LinkCollector, logger *slog.Logger) *LoggingLinkCollector {
	return &LoggingLinkCollector{next: next, logger: logger}
}

// CollectLinks logs the seed, link count, and duration, then returns the
// wrapped collector's result.
func (c *LoggingLinkCollector) CollectLinks(ctx context.Context, url string) (links []string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("collect links",
			"url", url,
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CollectLinks(ctx, url)
}

// Ensure LoggingHeadingExtractor implements docqa.HeadingExtractor.
var _ docqa.HeadingExtractor = (*LoggingHeadingExtractor)(nil)

// LoggingHeadingExtractor wraps a HeadingExtractor with logging.
type LoggingHeadingExtractor struct {
	next   docqa.HeadingExtractor
	logger *slog.Logger
}

// NewLoggingHeadingExtractor creates a new LoggingHeadingExtractor.
func NewLoggingHeadingExtractor(next docqa.HeadingExtractor, logger *slog.Logger) *LoggingHeadingExtractor {
	return &LoggingHeadingExtractor{next: next, logger: logger}
}

// ExtractHeadings logs the article, record count, and duration.
func (e *LoggingHeadingExtractor) ExtractHeadings(ctx context.Context, url string) (records []docqa.HeadingRecord, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract headings",
			"url", url,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractHeadings(ctx, url)
}

// Ensure LoggingSheetWriter implements docqa.SheetWriter.
var _ docqa.SheetWriter = (*LoggingSheetWriter)(nil)

// LoggingSheetWriter wraps a SheetWriter with logging.
type LoggingSheetWriter struct {
	next   docqa.SheetWriter
	logger *slog.Logger
}

// NewLoggingSheetWriter creates a new LoggingSheetWriter.
func NewLoggingSheetWriter(next docqa.SheetWriter, logger *slog.Logger) *LoggingSheetWriter {
	return &LoggingSheetWriter{next: next, logger: logger}
}

// WriteSheet logs the sheet name, range, and duration.
func (w *LoggingSheetWriter) WriteSheet(ctx context.Context, sheet *docqa.Sheet) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write sheet",
			"sheet", sheet.Name,
			"ref", sheet.Ref,
			"cells", len(sheet.Cells),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteSheet(ctx, sheet)
}
