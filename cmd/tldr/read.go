package main

import (
	"fmt"

	"github.com/fwojciec/tldr"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: fetching %s: %s\n", c.URL, tldr.ErrorMessage(err))
		return err
	}

	result, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: extracting %s: %s\n", c.URL, tldr.ErrorMessage(err))
		return err
	}
	if result.ContentHTML == "" {
		fmt.Fprintf(deps.Stderr, "error: no article content found at %s\n", c.URL)
		return tldr.Errorf(tldr.ENOTFOUND, "no article content found at %s", c.URL)
	}

	md, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: converting %s: %s\n", c.URL, tldr.ErrorMessage(err))
		return err
	}

	if result.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintln(deps.Stdout, md)
	return nil
}
