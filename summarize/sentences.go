package summarize

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// DefaultKeepRatio is the fraction of sentences kept in a summary.
const DefaultKeepRatio = 0.4

// sentenceTerminator follows every sentence in a built summary.
const sentenceTerminator = ". \n\n"

// SentenceScore is the sum of the word scores of a raw sentence.
type SentenceScore struct {
	Sentence string
	Score    int
}

// ScoreSentences scores each raw sentence by cleaning it, splitting it on
// whitespace and summing the scores of its words. Results keep input order
// and hold one entry per distinct raw sentence; repeats are skipped.
func ScoreSentences(sentences []string, wordScores map[string]int) []SentenceScore {
	seen := make(map[string]bool, len(sentences))
	scores := make([]SentenceScore, 0, len(sentences))
	for _, sentence := range sentences {
		if seen[sentence] {
			continue
		}
		seen[sentence] = true

		score := 0
		for _, w := range splitWhitespace(Clean(sentence)) {
			score += wordScores[w]
		}
		scores = append(scores, SentenceScore{Sentence: sentence, Score: score})
	}
	return scores
}

// SortSentences returns the highest scoring sentences, best first.
// It keeps percentToKeep of them, rounded to the nearest integer with ties
// to even. Equal scores keep their input order.
func SortSentences(scores []SentenceScore, percentToKeep float64) []string {
	keep := int(math.RoundToEven(percentToKeep * float64(len(scores))))
	keep = max(0, min(keep, len(scores)))

	sorted := slices.Clone(scores)
	slices.SortStableFunc(sorted, func(a, b SentenceScore) int {
		return cmp.Compare(b.Score, a.Score)
	})

	top := make([]string, keep)
	for i := range top {
		top[i] = sorted[i].Sentence
	}
	return top
}

// BuildSummary joins the raw sentences that appear in final, in their
// original order, each followed by ". \n\n". A selected sentence that occurs
// several times in raw is emitted each time.
func BuildSummary(raw []string, final []string) string {
	selected := make(map[string]bool, len(final))
	for _, s := range final {
		selected[s] = true
	}

	var b strings.Builder
	for _, s := range raw {
		if selected[s] {
			b.WriteString(s)
			b.WriteString(sentenceTerminator)
		}
	}
	return b.String()
}
