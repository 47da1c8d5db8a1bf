package tldr

import (
	"context"
	"regexp"
	"slices"
)

// SitemapService lists the articles a news site publishes in its sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the article URLs under baseURL, newest first.
	// Sitemaps named in robots.txt are read, else /sitemap.xml. A nil
	// filter keeps every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter narrows discovered URLs with regular expressions.
type URLFilter struct {
	// Include, when non-empty, keeps only URLs matching one of its patterns.
	Include []*regexp.Regexp

	// Exclude drops URLs matching any pattern. It wins over Include.
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns into a filter.
// Returns nil when both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	in, err := compileAll("include", include)
	if err != nil {
		return nil, err
	}
	ex, err := compileAll("exclude", exclude)
	if err != nil {
		return nil, err
	}
	return &URLFilter{Include: in, Exclude: ex}, nil
}

func compileAll(kind string, patterns []string) ([]*regexp.Regexp, error) {
	var res []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid %s pattern %q: %v", kind, p, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// Match reports whether url passes the filter. A nil filter passes everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	matches := func(re *regexp.Regexp) bool { return re.MatchString(url) }
	if len(f.Include) > 0 && !slices.ContainsFunc(f.Include, matches) {
		return false
	}
	return !slices.ContainsFunc(f.Exclude, matches)
}
