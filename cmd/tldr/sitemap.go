package main

import (
	"fmt"

	"github.com/fwojciec/tldr"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	filter, err := tldr.NewURLFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Site, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles found in the sitemap of %s\n", c.Site)
		return nil
	}
	if c.Limit > 0 && len(urls) > c.Limit {
		urls = urls[:c.Limit]
	}

	return summarizeURLs(deps, urls, c.OutputOptions)
}
