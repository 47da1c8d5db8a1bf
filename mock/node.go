package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.Node = (*Node)(nil)

// Node is a mock implementation of tldr.Node.
type Node struct {
	InnerTextFn func() string
	HasAttrFn   func(name string) bool
}

func (n *Node) InnerText() string {
	return n.InnerTextFn()
}

func (n *Node) HasAttr(name string) bool {
	return n.HasAttrFn(name)
}

var _ tldr.NodeRetriever = (*NodeRetriever)(nil)

// NodeRetriever is a mock implementation of tldr.NodeRetriever.
type NodeRetriever struct {
	RetrieveNodesFn func(ctx context.Context, url string, selector string) ([]tldr.Node, error)
}

func (r *NodeRetriever) RetrieveNodes(ctx context.Context, url string, selector string) ([]tldr.Node, error) {
	return r.RetrieveNodesFn(ctx, url, selector)
}
