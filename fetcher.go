package docqa

import "context"

// Fetcher retrieves HTML from URLs without running page scripts.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// PageSession is a single rendered browser page. DOM nodes never leave the
// page: callers pass a script and receive the structured data it returns.
type PageSession interface {
	// Navigate loads url and blocks until the network has been idle for the
	// session's quiescence window.
	Navigate(ctx context.Context, url string) error

	// Evaluate runs the JavaScript function js in the page with args and
	// decodes its JSON-serializable result into out.
	Evaluate(ctx context.Context, js string, out interface{}, args ...interface{}) error

	// Close releases the page and its browser.
	Close() error
}
