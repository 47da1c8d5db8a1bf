package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tldr"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := tldr.EntryFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	entries, err := deps.History.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries recorded yet. Use 'tldr summarize' to create one.")
		return nil
	}

	unchanged := unchangedEntries(entries)
	for i, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s",
			e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Title, truncateURL(e.URL, 60))
		if unchanged[i] {
			fmt.Fprint(deps.Stdout, "  (unchanged)")
		}
		fmt.Fprintln(deps.Stdout)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", strings.TrimSpace(e.Summary))
		}
	}
	return nil
}

// unchangedEntries marks the entries, listed newest first, whose content hash
// equals that of the next older listed entry for the same URL.
func unchangedEntries(entries []*tldr.Entry) map[int]bool {
	unchanged := make(map[int]bool)
	older := make(map[string]string)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if prev, ok := older[e.URL]; ok && e.ContentHash != "" && prev == e.ContentHash {
			unchanged[i] = true
		}
		older[e.URL] = e.ContentHash
	}
	return unchanged
}

// Run executes the forget command.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	if err := deps.History.DeleteEntry(deps.Ctx, c.ID); err != nil {
		if tldr.ErrorCode(err) == tldr.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: entry %q not found. Use 'tldr history' to see recorded summaries.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Forgot entry %s\n", c.ID)
	return nil
}
