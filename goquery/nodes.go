// Package goquery selects article nodes from HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tldr"
)

// Ensure Node implements tldr.Node at compile time.
var _ tldr.Node = (*Node)(nil)

// Node is a single element matched by a CSS selector.
type Node struct {
	sel *goquery.Selection
}

// InnerText returns the combined text of the element and its descendants.
func (n *Node) InnerText() string {
	return n.sel.Text()
}

// HasAttr reports whether the element carries the named attribute.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.sel.Attr(name)
	return ok
}

// SelectNodes parses html and returns the elements matching the CSS
// selector in document order. An invalid selector matches nothing.
func SelectNodes(html string, selector string) ([]tldr.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tldr.Errorf(tldr.EINVALID, "failed to parse HTML: %v", err)
	}
	return selectNodes(doc.Selection, selector), nil
}

func selectNodes(root *goquery.Selection, selector string) []tldr.Node {
	nodes := []tldr.Node{}
	root.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &Node{sel: sel})
	})
	return nodes
}
