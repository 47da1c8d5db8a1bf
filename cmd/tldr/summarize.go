package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/summarize"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	urls, err := c.expandURLs(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs given")
		return tldr.Errorf(tldr.EINVALID, "no URLs given")
	}
	return summarizeURLs(deps, urls, c.OutputOptions)
}

// expandURLs replaces each "-" argument with the URLs read from stdin.
func (c *SummarizeCmd) expandURLs(stdin io.Reader) ([]string, error) {
	if !slices.Contains(c.URLs, "-") {
		return c.URLs, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, tldr.Errorf(tldr.EINVALID, "reading URLs from stdin: %v", err)
	}
	fromStdin := summarize.ParseURLs(string(data))

	var urls []string
	for _, u := range c.URLs {
		if u == "-" {
			urls = append(urls, fromStdin...)
			continue
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// summarizeURLs runs the batch, prints every summary in input order and
// records the ones that came from a valid URL.
func summarizeURLs(deps *Dependencies, urls []string, opts OutputOptions) error {
	batch := &summarize.Batch{
		Summarizer:  deps.Summarizer,
		Concurrency: deps.Config.Concurrency,
		Seen:        deps.Seen,
	}
	summaries, err := batch.Run(deps.Ctx, urls)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	var writers []tldr.EntryWriter
	if !opts.NoHistory && deps.History != nil {
		writers = append(writers, deps.History)
	}
	if opts.Out != "" {
		writers = append(writers, deps.NewWriter(opts.Out))
	}

	for _, s := range summaries {
		writeSummary(deps.Stdout, s, opts.Format)

		if !summarize.ValidateURL(s.URL) {
			continue
		}
		// The history assigns ID and CreatedAt, so later writers share them.
		entry := tldr.NewEntry(s)
		for _, w := range writers {
			if err := w.CreateEntry(deps.Ctx, entry); err != nil {
				fmt.Fprintf(deps.Stderr, "error: saving %s: %s\n", s.URL, tldr.ErrorMessage(err))
				return err
			}
		}
	}
	return nil
}
