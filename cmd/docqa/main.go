package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/crawl"
	"github.com/fwojciec/docqa/excelize"
	"github.com/fwojciec/docqa/goquery"
	docqahttp "github.com/fwojciec/docqa/http"
	"github.com/fwojciec/docqa/rod"
	docqaslog "github.com/fwojciec/docqa/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Seeds are the navigation pages to expand. Defaults to docqa.DefaultSeeds.
	Seeds []string

	// Services replacing the browser-backed defaults when both are set.
	Links    docqa.LinkCollector
	Headings docqa.HeadingExtractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Seeds: docqa.DefaultSeeds,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docqa"),
		kong.Description("Crawl documentation headings into a Q&A spreadsheet"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	links, headings, session, err := m.openServices(cli, stderr)
	if err != nil {
		return err
	}
	defer session.Close()

	if cli.Verbose {
		links = docqaslog.NewLoggingLinkCollector(links, logger)
		headings = docqaslog.NewLoggingHeadingExtractor(headings, logger)
	}

	crawler := &crawl.Crawler{
		Links:    links,
		Headings: headings,
		Logger:   logger,
	}
	if cli.Rate > 0 {
		crawler.RateLimiter = crawl.NewDomainLimiter(cli.Rate)
	}

	records, err := crawler.Crawl(ctx, m.Seeds, func(e crawl.ProgressEvent) {
		fmt.Fprintln(stdout, crawl.FormatProgress(e))
	})
	if err != nil {
		return err
	}

	// The browser is not needed while tabulating and writing.
	if err := session.Close(); err != nil {
		return fmt.Errorf("closing browser: %w", err)
	}

	sheet, err := excelize.Tabulate(records)
	if err != nil {
		return fmt.Errorf("tabulating records: %w", err)
	}
	sheet.Name = cli.Sheet

	var writer docqa.SheetWriter = excelize.NewWriter(cli.Output)
	if cli.Verbose {
		writer = docqaslog.NewLoggingSheetWriter(writer, logger)
	}
	if err := writer.WriteSheet(ctx, sheet); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d rows to %s\n", len(records), cli.Output)
	return nil
}

// openServices wires the link collector and heading extractor. The returned
// closer releases the browser or fetcher they share.
func (m *Main) openServices(cli *CLI, stderr io.Writer) (docqa.LinkCollector, docqa.HeadingExtractor, io.Closer, error) {
	if m.Links != nil && m.Headings != nil {
		return m.Links, m.Headings, nopCloser{}, nil
	}

	sel := cli.Selectors()

	if cli.Static {
		fetcher := docqahttp.NewFetcher(docqahttp.WithTimeout(cli.Timeout))
		return goquery.NewLinkCollector(fetcher, sel.Sidebar), goquery.NewHeadingExtractor(fetcher, sel), fetcher, nil
	}

	session, err := rod.NewSession(
		rod.WithViewport(cli.Width, cli.Height),
		rod.WithTimeout(cli.Timeout),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return rod.NewLinkCollector(session, sel.Sidebar), rod.NewHeadingExtractor(session, sel), session, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
