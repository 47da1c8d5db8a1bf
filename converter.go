package tldr

// Converter renders article HTML as Markdown for reading in a terminal.
type Converter interface {
	// Convert expects the boilerplate-free HTML an Extractor returns.
	Convert(html string) (string, error)
}
