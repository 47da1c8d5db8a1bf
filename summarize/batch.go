package summarize

import (
	"context"
	"strings"

	"github.com/fwojciec/tldr"
	"golang.org/x/sync/errgroup"
)

// ParseURLs splits newline-separated input into URLs, trimming surrounding
// whitespace (including the "\r" of CRLF input) and skipping blank lines.
func ParseURLs(input string) []string {
	var urls []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

// Batch summarizes several URLs and returns the results in input order.
type Batch struct {
	Summarizer tldr.Summarizer

	// Concurrency limits how many articles are processed at once.
	// Values below 2 process URLs one after another.
	Concurrency int

	// Seen, if set, skips URLs already processed by this or an earlier batch.
	Seen tldr.URLSet
}

// Run summarizes urls. The first error (a done context) stops the batch.
func (b *Batch) Run(ctx context.Context, urls []string) ([]*tldr.ArticleSummary, error) {
	pending := urls
	if b.Seen != nil {
		pending = make([]string, 0, len(urls))
		for _, u := range urls {
			if b.Seen.Test(u) {
				continue
			}
			b.Seen.Add(u)
			pending = append(pending, u)
		}
	}

	results := make([]*tldr.ArticleSummary, len(pending))

	if b.Concurrency < 2 {
		for i, u := range pending {
			summary, err := b.Summarizer.Generate(ctx, u)
			if err != nil {
				return nil, err
			}
			results[i] = summary
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Concurrency)
	for i, u := range pending {
		g.Go(func() error {
			summary, err := b.Summarizer.Generate(ctx, u)
			if err != nil {
				return err
			}
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
