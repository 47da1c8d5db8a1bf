package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of tldr.Summarizer.
type Summarizer struct {
	GenerateFn func(ctx context.Context, url string) (*tldr.ArticleSummary, error)
}

func (s *Summarizer) Generate(ctx context.Context, url string) (*tldr.ArticleSummary, error) {
	return s.GenerateFn(ctx, url)
}
