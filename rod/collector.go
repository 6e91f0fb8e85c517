package rod

import (
	"context"

	"github.com/fwojciec/docqa"
)

// sidebarScript returns the href of every anchor inside the sidebar, or
// found=false when the page has no sidebar.
const sidebarScript = `(selector) => {
	const sidebar = document.querySelector(selector)
	if (!sidebar) {
		return { found: false, links: [] }
	}
	return {
		found: true,
		links: Array.from(sidebar.querySelectorAll('a')).map((a) => a.href),
	}
}`

// outlineScript returns the article title and its h2/h3 headings in
// document order, or found=false when the title or body is missing.
const outlineScript = `(titleSelector, bodySelector) => {
	const title = document.querySelector(titleSelector)
	const body = document.querySelector(bodySelector)
	if (!title || !body) {
		return { found: false }
	}
	return {
		found: true,
		url: window.location.href,
		title: title.innerText,
		headings: Array.from(body.querySelectorAll('h2, h3')).map((h) => ({
			level: h.tagName === 'H2' ? 2 : 3,
			id: h.id,
		})),
	}
}`

type sidebarResult struct {
	Found bool     `json:"found"`
	Links []string `json:"links"`
}

type outlineResult struct {
	Found bool `json:"found"`
	docqa.Outline
}

// Ensure LinkCollector implements docqa.LinkCollector at compile time.
var _ docqa.LinkCollector = (*LinkCollector)(nil)

// LinkCollector reads sidebar links from rendered navigation pages.
type LinkCollector struct {
	Session  docqa.PageSession
	Selector string
}

// NewLinkCollector creates a LinkCollector reading the sidebar matched by
// selector.
func NewLinkCollector(session docqa.PageSession, selector string) *LinkCollector {
	return &LinkCollector{Session: session, Selector: selector}
}

// CollectLinks implements docqa.LinkCollector.
func (c *LinkCollector) CollectLinks(ctx context.Context, url string) ([]string, error) {
	if err := c.Session.Navigate(ctx, url); err != nil {
		return nil, err
	}

	var res sidebarResult
	if err := c.Session.Evaluate(ctx, sidebarScript, &res, c.Selector); err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, docqa.Errorf(docqa.ENOTFOUND, "link directory not found, url: %s", url)
	}
	return res.Links, nil
}

// Ensure HeadingExtractor implements docqa.HeadingExtractor at compile time.
var _ docqa.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor reads article outlines from rendered pages.
type HeadingExtractor struct {
	Session       docqa.PageSession
	TitleSelector string
	BodySelector  string
}

// NewHeadingExtractor creates a HeadingExtractor using the title and body
// selectors from sel.
func NewHeadingExtractor(session docqa.PageSession, sel docqa.Selectors) *HeadingExtractor {
	return &HeadingExtractor{
		Session:       session,
		TitleSelector: sel.Title,
		BodySelector:  sel.Body,
	}
}

// ExtractHeadings implements docqa.HeadingExtractor.
func (e *HeadingExtractor) ExtractHeadings(ctx context.Context, url string) ([]docqa.HeadingRecord, error) {
	if err := e.Session.Navigate(ctx, url); err != nil {
		return nil, err
	}

	var res outlineResult
	if err := e.Session.Evaluate(ctx, outlineScript, &res, e.TitleSelector, e.BodySelector); err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, nil
	}
	return res.Outline.Records()
}
