// Package fetch provides tldr.Fetcher decorators for retrying and
// rate-limiting page requests.
package fetch

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/tldr"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return RetryDelays(3)
}

// RetryDelays returns n backoff delays starting at 1s and doubling.
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// Permanent reports whether a failed fetch would fail again: the page is
// gone or the request itself is malformed.
func Permanent(err error) bool {
	switch tldr.ErrorCode(err) {
	case tldr.ENOTFOUND, tldr.EINVALID:
		return true
	}
	return false
}

// FetchWithRetryDelays fetches url, retrying once per delay with the given
// backoff. Permanent errors are returned at once. The logger function, if
// provided, is called for each retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if Permanent(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Ensure RetryFetcher implements tldr.Fetcher at compile time.
var _ tldr.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches of the wrapped Fetcher with backoff.
type RetryFetcher struct {
	next   tldr.Fetcher
	delays []time.Duration
	logger LogFunc
}

// RetryOption configures a RetryFetcher.
type RetryOption func(*RetryFetcher)

// WithDelays sets the backoff delays; one retry is made per delay.
// Defaults to DefaultRetryDelays (1s, 2s, 4s).
func WithDelays(delays []time.Duration) RetryOption {
	return func(f *RetryFetcher) {
		f.delays = delays
	}
}

// WithRetryLog calls fn before every retry.
func WithRetryLog(fn LogFunc) RetryOption {
	return func(f *RetryFetcher) {
		f.logger = fn
	}
}

// NewRetryFetcher wraps next with retries.
func NewRetryFetcher(next tldr.Fetcher, opts ...RetryOption) *RetryFetcher {
	f := &RetryFetcher{
		next:   next,
		delays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch delegates to the wrapped fetcher, retrying on error.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return FetchWithRetryDelays(ctx, url, f.next.Fetch, f.logger, f.delays)
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

// Ensure LimitedFetcher implements tldr.Fetcher at compile time.
var _ tldr.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a per-domain limiter before every fetch.
type LimitedFetcher struct {
	next    tldr.Fetcher
	limiter tldr.DomainLimiter
}

// NewLimitedFetcher wraps next so requests are paced per host by limiter.
func NewLimitedFetcher(next tldr.Fetcher, limiter tldr.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the URL's host, then delegates to the wrapped fetcher.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", tldr.Errorf(tldr.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
