package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/tldr"
	main "github.com/fwojciec/tldr/cmd/tldr"
	"github.com/fwojciec/tldr/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	entries := []*tldr.Entry{
		{
			ID:        "entry-2",
			URL:       "https://www.abc.net.au/news/2024-05-01/a-very-long-story-slug-that-goes-on-and-on/103789456",
			Title:     "Second",
			Summary:   "Second summary.",
			CreatedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:        "entry-1",
			URL:       "https://example.com/first",
			Title:     "First",
			Summary:   "First summary.",
			CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	t.Run("lists entries with ID, title and URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter tldr.EntryFilter
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				FindEntriesFn: func(_ context.Context, f tldr.EntryFilter) ([]*tldr.Entry, error) {
					gotFilter = f
					return entries, nil
				},
			},
		}

		require.NoError(t, (&main.HistoryCmd{Limit: 20, Offset: 5}).Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "entry-2")
		assert.Contains(t, out, "Second")
		assert.Contains(t, out, "...")
		assert.Contains(t, out, "/103789456")
		assert.Contains(t, out, "https://example.com/first")
		assert.NotContains(t, out, "First summary.")
		assert.Equal(t, 20, gotFilter.Limit)
		assert.Equal(t, 5, gotFilter.Offset)
		assert.Nil(t, gotFilter.URL)
	})

	t.Run("shortens non-ASCII URLs on rune boundaries", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				FindEntriesFn: func(context.Context, tldr.EntryFilter) ([]*tldr.Entry, error) {
					return []*tldr.Entry{{
						ID:    "entry-1",
						URL:   "https://ελληνικά.example/" + strings.Repeat("ειδήσεις/", 10),
						Title: "Νέα",
					}}, nil
				},
			},
		}

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))

		out := stdout.String()
		assert.True(t, utf8.ValidString(out))
		assert.Contains(t, out, "...")
		_, url, ok := strings.Cut(strings.TrimSpace(out), "Νέα  ")
		require.True(t, ok)
		assert.Equal(t, 60, utf8.RuneCountInString(url))
	})

	t.Run("full shows summaries", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				FindEntriesFn: func(context.Context, tldr.EntryFilter) ([]*tldr.Entry, error) {
					return entries, nil
				},
			},
		}

		require.NoError(t, (&main.HistoryCmd{Full: true}).Run(deps))

		assert.Contains(t, stdout.String(), "First summary.")
		assert.Contains(t, stdout.String(), "Second summary.")
	})

	t.Run("flags summaries unchanged since the previous run", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				FindEntriesFn: func(context.Context, tldr.EntryFilter) ([]*tldr.Entry, error) {
					return []*tldr.Entry{
						{ID: "run-3", URL: "https://example.com/a", Title: "A", ContentHash: "bbbb"},
						{ID: "run-2", URL: "https://example.com/a", Title: "A", ContentHash: "aaaa"},
						{ID: "other", URL: "https://example.com/b", Title: "B", ContentHash: "aaaa"},
						{ID: "run-1", URL: "https://example.com/a", Title: "A", ContentHash: "aaaa"},
					}, nil
				},
			},
		}

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 4)
		assert.NotContains(t, lines[0], "(unchanged)")
		assert.Contains(t, lines[1], "run-2")
		assert.Contains(t, lines[1], "(unchanged)")
		assert.NotContains(t, lines[2], "(unchanged)")
		assert.NotContains(t, lines[3], "(unchanged)")
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter tldr.EntryFilter
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				FindEntriesFn: func(_ context.Context, f tldr.EntryFilter) ([]*tldr.Entry, error) {
					gotFilter = f
					return nil, nil
				},
			},
		}

		require.NoError(t, (&main.HistoryCmd{URL: "https://example.com/first"}).Run(deps))

		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://example.com/first", *gotFilter.URL)
	})

	t.Run("shows helpful message when history is empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				FindEntriesFn: func(context.Context, tldr.EntryFilter) ([]*tldr.Entry, error) {
					return []*tldr.Entry{}, nil
				},
			},
		}

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))

		assert.Contains(t, stdout.String(), "No summaries recorded yet")
	})

	t.Run("returns error when find fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			History: &mock.HistoryService{
				FindEntriesFn: func(context.Context, tldr.EntryFilter) ([]*tldr.Entry, error) {
					return nil, errors.New("database locked")
				},
			},
		}

		require.Error(t, (&main.HistoryCmd{}).Run(deps))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestForgetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes entry", func(t *testing.T) {
		t.Parallel()

		var deleted string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				DeleteEntryFn: func(_ context.Context, id string) error {
					deleted = id
					return nil
				},
			},
		}

		require.NoError(t, (&main.ForgetCmd{ID: "entry-1"}).Run(deps))

		assert.Equal(t, "entry-1", deleted)
		assert.Contains(t, stdout.String(), "Forgot entry entry-1")
	})

	t.Run("reports missing entry", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			History: &mock.HistoryService{
				DeleteEntryFn: func(context.Context, string) error {
					return tldr.Errorf(tldr.ENOTFOUND, "entry not found")
				},
			},
		}

		err := (&main.ForgetCmd{ID: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, tldr.ENOTFOUND, tldr.ErrorCode(err))
		assert.Contains(t, stderr.String(), `entry "nope" not found`)
	})
}
