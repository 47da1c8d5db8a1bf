// Package slog wraps tldr services with log/slog decorators. Each call emits
// one Info record carrying the URL, the duration and any error.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

var _ tldr.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page fetch.
type LoggingFetcher struct {
	next   tldr.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a LoggingFetcher.
func NewLoggingFetcher(next tldr.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
