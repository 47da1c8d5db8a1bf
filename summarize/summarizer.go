package summarize

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/tldr"
)

// Summarize returns the extractive summary of text. Sentences are the
// pieces between periods; the best percentToKeep of them are kept.
func Summarize(text string, stop *StopWords, percentToKeep float64) string {
	wordScores := ScoreWords(SortWords(CountWords(words(Clean(text)), stop)))

	raw := strings.Split(text, ".")
	final := SortSentences(ScoreSentences(raw, wordScores), percentToKeep)

	return BuildSummary(raw, final)
}

// Ensure Summarizer implements tldr.Summarizer at compile time.
var _ tldr.Summarizer = (*Summarizer)(nil)

// Summarizer summarizes articles fetched through a tldr.NodeRetriever.
// It is safe for concurrent use when the retriever is.
type Summarizer struct {
	retriever tldr.NodeRetriever
	stopWords *StopWords
	keepRatio float64
	generated atomic.Int64
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithKeepRatio sets the fraction of sentences kept in each summary.
// Defaults to DefaultKeepRatio (0.4).
func WithKeepRatio(r float64) Option {
	return func(s *Summarizer) {
		s.keepRatio = r
	}
}

// NewSummarizer creates a Summarizer. The stop-word set must already be
// loaded; it is only read afterwards.
func NewSummarizer(retriever tldr.NodeRetriever, stopWords *StopWords, opts ...Option) *Summarizer {
	s := &Summarizer{
		retriever: retriever,
		stopWords: stopWords,
		keepRatio: DefaultKeepRatio,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate summarizes the article at rawURL.
//
// Invalid URLs yield TitleUnknown and SummaryInvalidURL. A page whose
// headings cannot be retrieved gets TitleUnavailable, and a page whose
// paragraphs cannot be retrieved gets an empty summary.
func (s *Summarizer) Generate(ctx context.Context, rawURL string) (*tldr.ArticleSummary, error) {
	if !ValidateURL(rawURL) {
		return &tldr.ArticleSummary{
			URL:     rawURL,
			Title:   tldr.TitleUnknown,
			Summary: tldr.SummaryInvalidURL,
		}, nil
	}

	headings, err := s.retrieve(ctx, rawURL, tldr.SelectHeadings)
	if err != nil {
		return nil, err
	}
	title := ExtractTitle(headings)

	paragraphs, err := s.retrieve(ctx, rawURL, tldr.SelectParagraphs)
	if err != nil {
		return nil, err
	}
	summary := Summarize(ExtractBody(paragraphs), s.stopWords, s.keepRatio)

	s.generated.Add(1)

	return &tldr.ArticleSummary{
		URL:     rawURL,
		Title:   title,
		Summary: summary,
	}, nil
}

// retrieve returns no nodes when the page cannot be read. Only a done
// context is reported as an error.
func (s *Summarizer) retrieve(ctx context.Context, rawURL, selector string) ([]tldr.Node, error) {
	nodes, err := s.retriever.RetrieveNodes(ctx, rawURL, selector)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, nil
	}
	return nodes, nil
}

// Generated returns the number of summaries generated for valid URLs.
func (s *Summarizer) Generated() int64 {
	return s.generated.Load()
}
