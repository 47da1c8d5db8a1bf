package summarize_test

import (
	"testing"

	"github.com/fwojciec/tldr/summarize"
	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	t.Parallel()

	stop := summarize.NewStopWords("a", "an", "the")

	t.Run("counts non-stop words", func(t *testing.T) {
		t.Parallel()

		got := summarize.CountWords([]string{"test", "test", "trial"}, stop)

		assert.Equal(t, []summarize.WordCount{{Word: "test", Count: 2}, {Word: "trial", Count: 1}}, got)
	})

	t.Run("excludes stop words", func(t *testing.T) {
		t.Parallel()

		got := summarize.CountWords([]string{"test", "test", "trial", "a", "an", "the"}, stop)

		assert.Equal(t, []summarize.WordCount{{Word: "test", Count: 2}, {Word: "trial", Count: 1}}, got)
	})

	t.Run("excludes empty strings", func(t *testing.T) {
		t.Parallel()

		got := summarize.CountWords([]string{"", "x", ""}, stop)

		assert.Equal(t, []summarize.WordCount{{Word: "x", Count: 1}}, got)
	})

	t.Run("counts every occurrence when nothing is loaded", func(t *testing.T) {
		t.Parallel()

		got := summarize.CountWords([]string{"the", "the"}, nil)

		assert.Equal(t, []summarize.WordCount{{Word: "the", Count: 2}}, got)
	})

	t.Run("matches non-stop occurrences", func(t *testing.T) {
		t.Parallel()

		words := []string{"b", "the", "c", "b", "a", "c", "b", "d"}
		got := summarize.CountWords(words, stop)

		for _, wc := range got {
			assert.False(t, stop.Contains(wc.Word))
			n := 0
			for _, w := range words {
				if w == wc.Word {
					n++
				}
			}
			assert.Equal(t, n, wc.Count, wc.Word)
		}
		assert.Len(t, got, 3)
	})
}

func TestSortWords(t *testing.T) {
	t.Parallel()

	t.Run("drops single occurrences and sorts by count", func(t *testing.T) {
		t.Parallel()

		counts := []summarize.WordCount{
			{Word: "test", Count: 2},
			{Word: "challenge", Count: 5},
			{Word: "trial", Count: 1},
		}

		assert.Equal(t, []string{"challenge", "test"}, summarize.SortWords(counts))
	})

	t.Run("ties keep first-sighting order", func(t *testing.T) {
		t.Parallel()

		counts := []summarize.WordCount{
			{Word: "b", Count: 2},
			{Word: "a", Count: 3},
			{Word: "c", Count: 2},
		}

		assert.Equal(t, []string{"a", "b", "c"}, summarize.SortWords(counts))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, summarize.SortWords(nil))
	})
}

func TestScoreWords(t *testing.T) {
	t.Parallel()

	t.Run("assigns percentile buckets", func(t *testing.T) {
		t.Parallel()

		ranked := []string{
			"a", "b", "c", "d", "e",
			"f", "g", "h", "i", "j",
			"k", "l", "m", "n", "o",
			"p", "q", "r", "s", "t",
		}
		scores := summarize.ScoreWords(ranked)

		want := map[string]int{"a": 5, "b": 4, "e": 3, "i": 2, "m": 1, "q": 0, "r": 0, "s": 0, "t": 0}
		for w, score := range want {
			assert.Equal(t, score, scores[w], w)
		}
		for _, w := range []string{"q", "r", "s", "t"} {
			_, ok := scores[w]
			assert.False(t, ok, "%q should have no entry", w)
		}
		assert.Len(t, scores, 16)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, summarize.ScoreWords(nil))
	})

	t.Run("few words fill fewer buckets", func(t *testing.T) {
		t.Parallel()

		scores := summarize.ScoreWords([]string{"x", "y"})

		assert.Equal(t, map[string]int{"x": 5, "y": 2}, scores)
	})

	t.Run("single word", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, map[string]int{"x": 5}, summarize.ScoreWords([]string{"x"}))
	})
}
