package tldr_test

import (
	"testing"

	"github.com/fwojciec/tldr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *tldr.URLFilter

		assert.True(t, f.Match("https://example.com/news/1"))
	})

	t.Run("include then exclude", func(t *testing.T) {
		t.Parallel()

		f, err := tldr.NewURLFilter([]string{`/news/`}, []string{`/news/live-`})
		require.NoError(t, err)

		assert.True(t, f.Match("https://example.com/news/2018-07-06/rescue"))
		assert.False(t, f.Match("https://example.com/sport/cricket"))
		assert.False(t, f.Match("https://example.com/news/live-blog"))
	})
}

func TestNewURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without patterns", func(t *testing.T) {
		t.Parallel()

		f, err := tldr.NewURLFilter(nil, nil)

		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := tldr.NewURLFilter([]string{"("}, nil)

		require.Error(t, err)
		assert.Equal(t, tldr.EINVALID, tldr.ErrorCode(err))
	})
}
