package tldr

// ExtractResult is the article part of a page.
type ExtractResult struct {
	// Title from the page metadata, empty when none was found.
	Title string

	// ContentHTML is the article body with navigation, footers and ads
	// stripped. Headings and paragraphs survive, so nodes can still be
	// selected from it.
	ContentHTML string
}

// Extractor separates an article from the rest of its page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
