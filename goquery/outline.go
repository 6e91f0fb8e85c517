// Package goquery reads sidebar links and article outlines from static HTML
// using CSS selectors. It mirrors the in-page scripts of package rod for
// sites that render without JavaScript.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docqa"
)

// SidebarLinks returns the resolved href of every anchor inside the first
// element matching selector, in document order. found is false when no
// element matches.
func SidebarLinks(html, pageURL, selector string) (links []string, found bool, err error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, false, docqa.Errorf(docqa.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false, docqa.Errorf(docqa.EINVALID, "failed to parse HTML: %v", err)
	}

	sidebar := doc.Find(selector).First()
	if sidebar.Length() == 0 {
		return nil, false, nil
	}

	links = []string{}
	sidebar.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, exists := a.Attr("href")
		if !exists {
			links = append(links, "")
			return
		}
		links = append(links, resolveHref(base, href))
	})
	return links, true, nil
}

// ParseOutline reads the article title and the h2/h3 headings of the body.
// Returns nil when either the title or the body is missing.
func ParseOutline(html, pageURL string, sel docqa.Selectors) (*docqa.Outline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docqa.Errorf(docqa.EINVALID, "failed to parse HTML: %v", err)
	}

	title := doc.Find(sel.Title).First()
	body := doc.Find(sel.Body).First()
	if title.Length() == 0 || body.Length() == 0 {
		return nil, nil
	}

	outline := &docqa.Outline{
		URL:   pageURL,
		Title: strings.Join(strings.Fields(title.Text()), " "),
	}
	body.Find("h2, h3").Each(func(_ int, h *goquery.Selection) {
		level := 3
		if goquery.NodeName(h) == "h2" {
			level = 2
		}
		outline.Headings = append(outline.Headings, docqa.Heading{
			Level: level,
			ID:    h.AttrOr("id", ""),
		})
	})
	return outline, nil
}

// resolveHref resolves href against base the way a browser does for
// HTMLAnchorElement.href: unparseable values are returned unchanged.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
