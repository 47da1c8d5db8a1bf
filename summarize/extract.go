package summarize

import (
	"net/url"
	"strings"

	"github.com/fwojciec/tldr"
)

// ValidateURL reports whether rawURL is an absolute URL with a scheme and
// a host. A bare host name such as "www.google.com" is not valid.
func ValidateURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// ExtractTitle returns the text of the last heading, or TitleUnavailable
// when there are none.
func ExtractTitle(headings []tldr.Node) string {
	if len(headings) == 0 {
		return tldr.TitleUnavailable
	}
	return headings[len(headings)-1].InnerText()
}

// ExtractBody concatenates the text of the article's paragraphs.
//
// The first paragraph holds publication details and is always skipped.
// The body ends at the first later paragraph carrying a class attribute,
// which marks the related-topics block that follows the article.
func ExtractBody(paragraphs []tldr.Node) string {
	var b strings.Builder
	for i := 1; i < len(paragraphs); i++ {
		if paragraphs[i].HasAttr("class") {
			break
		}
		b.WriteString(paragraphs[i].InnerText())
	}
	return b.String()
}
