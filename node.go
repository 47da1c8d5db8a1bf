package tldr

import "context"

// CSS selectors requested from a NodeRetriever.
const (
	SelectHeadings   = "h1"
	SelectParagraphs = "p"
)

// Node is an element of a retrieved page.
type Node interface {
	// InnerText returns the text content of the node and its descendants.
	InnerText() string

	// HasAttr reports whether the node carries the named attribute.
	HasAttr(name string) bool
}

// NodeRetriever loads a page and returns the nodes matching a selector,
// in document order.
type NodeRetriever interface {
	// RetrieveNodes returns an empty slice when nothing matches.
	// Unreachable pages are reported as errors; callers decide whether
	// to degrade to an empty result.
	RetrieveNodes(ctx context.Context, url string, selector string) ([]Node, error)
}
