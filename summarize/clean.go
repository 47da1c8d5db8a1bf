// Package summarize implements frequency-based extractive summarization of
// article text and the pipeline that applies it to web pages.
//
// The scoring steps are free functions over immutable inputs:
//
//	text → Clean → CountWords → SortWords → ScoreWords
//	     → ScoreSentences → SortSentences → BuildSummary
//
// Summarizer drives them for a URL using a tldr.NodeRetriever.
package summarize

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Clean removes every Unicode punctuation character (category P) from text
// and lowercases the remainder one rune at a time, so a word folds the same
// way wherever it appears. Whitespace is left untouched.
func Clean(text string) string {
	t := transform.Chain(runes.Remove(runes.In(unicode.P)), runes.Map(unicode.ToLower))
	// Rune-wise transformers report no errors.
	out, _, _ := transform.String(t, text)
	return out
}

// splitWhitespace splits s at every Unicode whitespace rune. Consecutive
// separators produce empty tokens, which callers either drop or score as 0.
func splitWhitespace(s string) []string {
	var tokens []string
	start := 0
	for i, r := range s {
		if unicode.IsSpace(r) {
			tokens = append(tokens, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(tokens, s[start:])
}

// words returns the non-empty whitespace-separated tokens of s.
func words(s string) []string {
	tokens := splitWhitespace(s)
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
