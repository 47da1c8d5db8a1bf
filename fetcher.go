package tldr

import "context"

// Fetcher downloads article pages.
type Fetcher interface {
	// Fetch returns the HTML at url. Cancelling ctx aborts the request.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases connections or the browser behind the fetcher.
	Close() error
}

// DomainLimiter paces requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}

// URLSet remembers URLs that have already been processed.
// Implementations may report false positives.
type URLSet interface {
	Add(url string)
	Test(url string) bool
}
