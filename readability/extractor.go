// Package readability strips boilerplate from article pages with
// go-readability, the Mozilla Readability port.
package readability

import (
	"strings"

	"github.com/fwojciec/tldr"
	"github.com/go-shiori/go-readability"
)

var _ tldr.Extractor = (*Extractor)(nil)

// Extractor keeps the readable article body of a page. tldr summarizes from
// its output with --extractor=readability, where dropping sidebars and
// comment threads keeps their words out of the frequency counts.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and its body as HTML.
func (e *Extractor) Extract(rawHTML string) (*tldr.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tldr.Errorf(tldr.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	// The title can become an <h1>, so stray whitespace would leak into the
	// printed headline.
	return &tldr.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
