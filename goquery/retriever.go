package goquery

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tldr"
)

// DefaultCacheSize is the number of parsed pages a Retriever keeps.
const DefaultCacheSize = 16

// Ensure Retriever implements tldr.NodeRetriever at compile time.
var _ tldr.NodeRetriever = (*Retriever)(nil)

// Retriever fetches pages, optionally strips boilerplate, and selects nodes
// with CSS selectors. Load results are cached by URL, failures included, so
// that selecting headings and paragraphs of one article fetches it once.
//
// Retriever is safe for concurrent use when its Fetcher and Extractor are.
type Retriever struct {
	fetcher   tldr.Fetcher
	extractor tldr.Extractor
	cacheSize int

	mu    sync.Mutex
	pages map[string]page
	order []string
}

// page is a cached load: a parsed document or the error loading it.
type page struct {
	doc *goquery.Document
	err error
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithExtractor runs fetched HTML through e before selecting nodes.
// When the extracted content has no <h1>, the extracted title becomes one.
func WithExtractor(e tldr.Extractor) RetrieverOption {
	return func(r *Retriever) {
		r.extractor = e
	}
}

// WithCacheSize sets how many parsed pages are kept.
// Defaults to DefaultCacheSize (16) if not specified.
func WithCacheSize(n int) RetrieverOption {
	return func(r *Retriever) {
		r.cacheSize = n
	}
}

// NewRetriever creates a Retriever that loads pages with fetcher.
func NewRetriever(fetcher tldr.Fetcher, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		fetcher:   fetcher,
		cacheSize: DefaultCacheSize,
		pages:     make(map[string]page),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RetrieveNodes returns the elements of the page at url matching selector.
func (r *Retriever) RetrieveNodes(ctx context.Context, url string, selector string) ([]tldr.Node, error) {
	doc, err := r.document(ctx, url)
	if err != nil {
		return nil, err
	}
	return selectNodes(doc.Selection, selector), nil
}

func (r *Retriever) document(ctx context.Context, url string) (*goquery.Document, error) {
	r.mu.Lock()
	p, ok := r.pages[url]
	r.mu.Unlock()
	if ok {
		return p.doc, p.err
	}

	doc, err := r.load(ctx, url)
	// A done context says nothing about the page.
	if err != nil && ctx.Err() != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[url]; !ok && r.cacheSize > 0 {
		if len(r.order) >= r.cacheSize {
			delete(r.pages, r.order[0])
			r.order = r.order[1:]
		}
		r.pages[url] = page{doc: doc, err: err}
		r.order = append(r.order, url)
	}
	return doc, err
}

func (r *Retriever) load(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var title string
	if r.extractor != nil {
		result, err := r.extractor.Extract(body)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", url, err)
		}
		body, title = result.ContentHTML, result.Title
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, tldr.Errorf(tldr.EINVALID, "failed to parse HTML from %s: %v", url, err)
	}

	if title = strings.TrimSpace(title); title != "" && doc.Find(tldr.SelectHeadings).Length() == 0 {
		doc.Find("body").PrependHtml("<h1>" + html.EscapeString(title) + "</h1>")
	}
	return doc, nil
}
