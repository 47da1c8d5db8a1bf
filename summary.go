package tldr

import "context"

// Placeholder titles and summaries produced when an article cannot be read.
const (
	TitleUnknown     = "UNKNOWN"
	TitleUnavailable = "UNAVAILABLE"

	SummaryInvalidURL = "Invalid URL - No summary could be generated."
)

// ArticleSummary is the result of summarizing one article.
// It is created once per run and never mutated afterwards.
type ArticleSummary struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Summarizer produces extractive summaries of web articles.
type Summarizer interface {
	// Generate summarizes the article at url. An invalid URL, a page
	// without headings or an unreachable page are reported through
	// placeholder values in the returned summary, not as errors.
	// The error is non-nil only when ctx is done.
	Generate(ctx context.Context, url string) (*ArticleSummary, error)
}
