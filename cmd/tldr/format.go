package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/tldr"
)

// writeSummary prints one article summary in the chosen format.
func writeSummary(w io.Writer, s *tldr.ArticleSummary, format string) {
	body := strings.TrimSpace(s.Summary)
	if format == "markdown" {
		fmt.Fprintf(w, "## %s\n\n<%s>\n\n", s.Title, s.URL)
		if body != "" {
			fmt.Fprintf(w, "%s\n\n", body)
		}
		return
	}

	fmt.Fprintln(w, s.Title)
	fmt.Fprintln(w, s.URL)
	if body != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, body)
	}
	fmt.Fprintln(w)
}

// truncateURL shortens a URL to maxLen runes for display, keeping the more
// informative end.
func truncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	r := []rune(url)
	if len(r) <= maxLen {
		return url
	}
	if maxLen < 4 {
		return string(r[:maxLen])
	}
	return "..." + string(r[len(r)-maxLen+3:])
}
