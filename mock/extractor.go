package mock

import "github.com/fwojciec/tldr"

var _ tldr.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tldr.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*tldr.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*tldr.ExtractResult, error) {
	return e.ExtractFn(html)
}
