package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of tldr.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *tldr.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *tldr.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
