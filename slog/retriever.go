package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

var _ tldr.NodeRetriever = (*LoggingRetriever)(nil)

// LoggingRetriever logs node selection.
type LoggingRetriever struct {
	next   tldr.NodeRetriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a LoggingRetriever.
func NewLoggingRetriever(next tldr.NodeRetriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// RetrieveNodes delegates to the wrapped retriever.
func (r *LoggingRetriever) RetrieveNodes(ctx context.Context, url, selector string) (nodes []tldr.Node, err error) {
	defer func(begin time.Time) {
		r.logger.Info("retrieve nodes",
			"url", url,
			"selector", selector,
			"count", len(nodes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RetrieveNodes(ctx, url, selector)
}
