package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

var _ tldr.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer logs every generated summary.
type LoggingSummarizer struct {
	next   tldr.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a LoggingSummarizer.
func NewLoggingSummarizer(next tldr.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Generate delegates to the wrapped summarizer. When it counts its runs, the
// running total is logged as "generated".
func (s *LoggingSummarizer) Generate(ctx context.Context, url string) (summary *tldr.ArticleSummary, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if summary != nil {
			attrs = append(attrs, "title", summary.Title, "bytes", len(summary.Summary))
		}
		if c, ok := s.next.(interface{ Generated() int64 }); ok {
			attrs = append(attrs, "generated", c.Generated())
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("summarize", attrs...)
	}(time.Now())
	return s.next.Generate(ctx, url)
}
