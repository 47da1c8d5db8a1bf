package fetch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/fetch"
	"github.com/fwojciec/tldr/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelays is used for fast unit tests.
var noDelays = []time.Duration{0, 0, 0}

func TestRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, fetch.DefaultRetryDelays())
	assert.Equal(t, []time.Duration{time.Second}, fetch.RetryDelays(1))
	assert.Empty(t, fetch.RetryDelays(0))
}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetcher := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "<html>content</html>", nil
		}

		html, err := fetch.FetchWithRetryDelays(context.Background(), "https://example.com", fetcher, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("returns error after max retries", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetcher := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("persistent error")
		}

		_, err := fetch.FetchWithRetryDelays(context.Background(), "https://example.com", fetcher, nil, noDelays)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistent error")
		assert.Equal(t, 4, attempts)
	})

	t.Run("returns permanent errors without retrying", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{tldr.ENOTFOUND, tldr.EINVALID} {
			var attempts int
			fetcher := func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", tldr.Errorf(code, "HTTP 404 for %s", url)
			}

			_, err := fetch.FetchWithRetryDelays(context.Background(), "https://example.com", fetcher, nil, noDelays)

			require.Error(t, err)
			assert.Equal(t, code, tldr.ErrorCode(err))
			assert.Equal(t, 1, attempts, code)
		}
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var attempts int
		fetcher := func(ctx context.Context, url string) (string, error) {
			attempts++
			cancel()
			return "", errors.New("transient error")
		}

		_, err := fetch.FetchWithRetryDelays(ctx, "https://example.com", fetcher, nil, noDelays)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetcher := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient error")
			}
			return "<html>success</html>", nil
		}

		var logs []string
		logger := func(format string, args ...any) {
			logs = append(logs, format)
		}

		html, err := fetch.FetchWithRetryDelays(context.Background(), "https://example.com/page", fetcher, logger, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>success</html>", html)
		assert.Len(t, logs, 2)
	})
}

func TestPermanent(t *testing.T) {
	t.Parallel()

	assert.True(t, fetch.Permanent(tldr.Errorf(tldr.ENOTFOUND, "gone")))
	assert.True(t, fetch.Permanent(fmt.Errorf("wrapped: %w", tldr.Errorf(tldr.EINVALID, "bad URL"))))
	assert.False(t, fetch.Permanent(errors.New("HTTP 503 for https://example.com")))
	assert.False(t, fetch.Permanent(context.DeadlineExceeded))
}

func TestRetryFetcher(t *testing.T) {
	t.Parallel()

	t.Run("implements tldr.Fetcher", func(t *testing.T) {
		t.Parallel()
		var _ tldr.Fetcher = fetch.NewRetryFetcher(&mock.Fetcher{})
	})

	t.Run("retries wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		var attempts int
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				if attempts == 1 {
					return "", errors.New("HTTP 503 for " + url)
				}
				return "<html>ok</html>", nil
			},
		}
		var logs int
		f := fetch.NewRetryFetcher(inner,
			fetch.WithDelays([]time.Duration{0}),
			fetch.WithRetryLog(func(string, ...any) { logs++ }),
		)

		html, err := f.Fetch(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 2, attempts)
		assert.Equal(t, 1, logs)
	})

	t.Run("no delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", errors.New("down")
			},
		}
		f := fetch.NewRetryFetcher(inner, fetch.WithDelays(nil))

		_, err := f.Fetch(context.Background(), "https://example.com/a")

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		f := fetch.NewRetryFetcher(&mock.Fetcher{CloseFn: func() error { closed = true; return nil }})

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}

func TestLimitedFetcher(t *testing.T) {
	t.Parallel()

	t.Run("waits on the URL host", func(t *testing.T) {
		t.Parallel()

		var hosts []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				hosts = append(hosts, domain)
				return nil
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		f := fetch.NewLimitedFetcher(inner, limiter)

		_, err := f.Fetch(context.Background(), "https://www.abc.net.au/news/1")

		require.NoError(t, err)
		assert.Equal(t, []string{"www.abc.net.au"}, hosts)
	})

	t.Run("does not fetch when wait fails", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				return context.DeadlineExceeded
			},
		}
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}
		f := fetch.NewLimitedFetcher(inner, limiter)

		_, err := f.Fetch(context.Background(), "https://example.com/")

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("rejects unparsable URL", func(t *testing.T) {
		t.Parallel()

		f := fetch.NewLimitedFetcher(&mock.Fetcher{}, &mock.DomainLimiter{})

		_, err := f.Fetch(context.Background(), "http://[::1")

		assert.Equal(t, tldr.EINVALID, tldr.ErrorCode(err))
	})
}
