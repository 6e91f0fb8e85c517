package docqa

import (
	"context"
	"net/url"
	"strings"
)

// HeadingRecord is one extracted heading, enriched with page metadata.
// Title carries enough context to be unique across a whole crawl because
// records from every article end up in a single flat table.
type HeadingRecord struct {
	Title    string `json:"title"`
	Href     string `json:"href"`
	Language string `json:"language"`
	Product  string `json:"product"`
	Platform string `json:"platform"`
}

// Heading is a level-2 or level-3 heading as it appears in an article body.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
}

// Outline is the structured view of a rendered article that crosses the
// boundary out of the page: its URL, title text, and headings in document
// order.
type Outline struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Headings []Heading `json:"headings"`
}

// Records composes one HeadingRecord per level-2 or level-3 heading.
//
// A level-2 heading becomes the context for the level-3 headings that follow
// it. The context starts empty, so a level-3 heading that precedes every
// level-2 heading is composed with an empty parent id.
func (o *Outline) Records() ([]HeadingRecord, error) {
	u, err := url.Parse(o.URL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid page URL %q: %v", o.URL, err)
	}

	segments := strings.Split(u.EscapedPath(), "/")
	language := pathSegment(segments, 1)
	product := LookupProduct(pathSegment(segments, 2))
	platform := u.Query().Get("platform")

	records := make([]HeadingRecord, 0, len(o.Headings))
	var parentID string
	for _, h := range o.Headings {
		var title string
		switch h.Level {
		case 2:
			parentID = h.ID
			title = strings.Join([]string{o.Title, h.ID, product.CN}, " - ")
		case 3:
			title = strings.Join([]string{o.Title, parentID, h.ID, product.CN}, " - ")
		default:
			continue
		}

		href := *u
		href.Fragment = h.ID
		href.RawFragment = ""

		records = append(records, HeadingRecord{
			Title:    title,
			Href:     href.String(),
			Language: language,
			Product:  product.EN,
			Platform: platform,
		})
	}
	return records, nil
}

func pathSegment(segments []string, i int) string {
	if i >= len(segments) {
		return ""
	}
	return segments[i]
}

// LinkCollector expands a navigation page into the links of its sidebar.
type LinkCollector interface {
	// CollectLinks loads the page, waits for it to settle, and returns the
	// absolute URL of every anchor in the sidebar in document order.
	// Returns ENOTFOUND if the page has no sidebar.
	CollectLinks(ctx context.Context, url string) ([]string, error)
}

// HeadingExtractor turns an article page into heading records.
type HeadingExtractor interface {
	// ExtractHeadings loads the page, waits for it to settle, and returns a
	// record per level-2 and level-3 heading in the article body.
	// Pages without a title or body yield no records and no error.
	ExtractHeadings(ctx context.Context, url string) ([]HeadingRecord, error)
}

// Selectors locate the parts of a documentation page the crawl reads.
type Selectors struct {
	Sidebar string
	Title   string
	Body    string
}

// DefaultSelectors match the documentation site's page layout.
var DefaultSelectors = Selectors{
	Sidebar: ".sidebar-menu",
	Title:   ".page-title",
	Body:    ".article-page-container",
}
