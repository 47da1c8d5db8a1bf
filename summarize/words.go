package summarize

import (
	"cmp"
	"slices"
)

// WordCount is the number of occurrences of a non-stop word.
type WordCount struct {
	Word  string
	Count int
}

// CountWords tallies occurrences of each word, in order of first sighting.
// A word is checked against stop only the first time it is seen; stop words
// and empty strings never enter the result.
func CountWords(words []string, stop *StopWords) []WordCount {
	index := make(map[string]int)
	var counts []WordCount
	for _, w := range words {
		if i, ok := index[w]; ok {
			counts[i].Count++
			continue
		}
		if w == "" || stop.Contains(w) {
			continue
		}
		index[w] = len(counts)
		counts = append(counts, WordCount{Word: w, Count: 1})
	}
	return counts
}

// SortWords returns the words seen more than once, most frequent first.
// Ties keep their order of first sighting.
func SortWords(counts []WordCount) []string {
	repeated := make([]WordCount, 0, len(counts))
	for _, c := range counts {
		if c.Count > 1 {
			repeated = append(repeated, c)
		}
	}
	slices.SortStableFunc(repeated, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	ranked := make([]string, len(repeated))
	for i, c := range repeated {
		ranked[i] = c.Word
	}
	return ranked
}

// Percentile buckets for ScoreWords, by rank position over the word count.
var wordBuckets = []struct {
	upTo  float64
	score int
}{
	{0.05, 5},
	{0.2, 4},
	{0.4, 3},
	{0.6, 2},
	{0.8, 1},
}

// ScoreWords scores ranked words by percentile: 5 for the top 5%, then 4, 3,
// 2 and 1 up to the 80th percentile. Words past that get no entry and count
// as zero.
func ScoreWords(ranked []string) map[string]int {
	scores := make(map[string]int)
	n := float64(len(ranked))
	for i, w := range ranked {
		score := 0
		for _, b := range wordBuckets {
			if float64(i) < b.upTo*n {
				score = b.score
				break
			}
		}
		if score == 0 {
			break
		}
		scores[w] = score
	}
	return scores
}
