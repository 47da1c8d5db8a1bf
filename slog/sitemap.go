package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

var _ tldr.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs sitemap discovery. The count it reports is
// taken after filtering, which is what the sitemap command's --limit cuts.
type LoggingSitemapService struct {
	next   tldr.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a LoggingSitemapService.
func NewLoggingSitemapService(next tldr.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs how many URLs were
// found.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *tldr.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
