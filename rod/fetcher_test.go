//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ tldr.Fetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns rendered article", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<body>
<h1 id="headline">Loading...</h1>
<script>
document.getElementById('headline').textContent = 'Rendered Headline';
</script>
</body>
</html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "Rendered Headline")
		assert.NotContains(t, html, "Loading...")
	})

	t.Run("keeps working across browser restarts", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body><p>story</p></body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithMaxPages(1))
		require.NoError(t, err)
		defer fetcher.Close()

		first := fetcher.LauncherPID()
		for range 3 {
			html, err := fetcher.Fetch(context.Background(), srv.URL)
			require.NoError(t, err)
			assert.Contains(t, html, "story")
		}
		assert.NotEqual(t, first, fetcher.LauncherPID())
	})

	t.Run("returns error on canceled context", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fetcher.Fetch(ctx, "http://example.com")

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("times out on slow page", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte(`<html><body>late</body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.Fetch(context.Background(), srv.URL)

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("returns error after close", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		require.NoError(t, fetcher.Close())
		require.NoError(t, fetcher.Close())

		_, err = fetcher.Fetch(context.Background(), "http://example.com")

		assert.Equal(t, tldr.EINVALID, tldr.ErrorCode(err))
		assert.Contains(t, tldr.ErrorMessage(err), "closed")
	})
}
