package http

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/tldr"
)

var _ tldr.SitemapService = (*SitemapService)(nil)

// SitemapService discovers article URLs from a site's sitemaps.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a SitemapService. A nil client means
// http.DefaultClient.
func NewSitemapService(client *http.Client, opts ...Option) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	f := &Fetcher{userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(f)
	}
	return &SitemapService{client: client, userAgent: f.userAgent}
}

// sitemapURL is one <url> entry of a urlset.
type sitemapURL struct {
	loc     string
	lastmod time.Time
}

// DiscoverURLs returns the article URLs listed in baseURL's sitemaps, newest
// first by <lastmod> (or <news:publication_date>). Entries without a date keep
// their document order after the dated ones. A path in baseURL restricts the
// result to URLs below that path.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *tldr.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, tldr.Errorf(tldr.EINVALID, "invalid site URL: %q", baseURL)
	}
	prefix := strings.TrimSuffix(base.Path, "/")
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemaps, err := s.findSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	var entries []sitemapURL
	visited := make(map[string]bool)
	for _, sm := range sitemaps {
		found, err := s.readSitemap(ctx, sm, visited)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}

	slices.SortStableFunc(entries, func(a, b sitemapURL) int {
		return cmp.Compare(b.lastmod.Unix(), a.lastmod.Unix())
	})

	urls := []string{}
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.loc] {
			continue
		}
		seen[e.loc] = true
		if prefix != "" && !underPath(e.loc, prefix) {
			continue
		}
		if !filter.Match(e.loc) {
			continue
		}
		urls = append(urls, e.loc)
	}
	return urls, nil
}

// underPath reports whether rawURL's path is prefix or lies below it.
// /news matches /news and /news/story but not /newsletter.
func underPath(rawURL, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}

// findSitemaps reads Sitemap: directives from robots.txt, falling back to
// /sitemap.xml when there are none.
func (s *SitemapService) findSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if found, err := s.robotsSitemaps(ctx, robots); err == nil && len(found) > 0 {
		return found, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	ok, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return []string{fallback}, nil
}

func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var found []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < len(directive) || !strings.EqualFold(line[:len(directive)], directive) {
			continue
		}
		if loc := strings.TrimSpace(line[len(directive):]); loc != "" {
			found = append(found, loc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return found, nil
}

// readSitemap parses a urlset or, recursively, a sitemapindex.
func (s *SitemapService) readSitemap(ctx context.Context, loc string, visited map[string]bool) ([]sitemapURL, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if visited[loc] {
		return nil, nil
	}
	visited[loc] = true

	body, err := s.get(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap %s: %w", loc, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap %s", loc)
	}

	if root.Tag != "sitemapindex" {
		return parseURLSet(root), nil
	}

	var entries []sitemapURL
	for _, child := range root.SelectElements("sitemap") {
		next := elementText(child, "loc")
		if next == "" {
			continue
		}
		found, err := s.readSitemap(ctx, next, visited)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	return entries, nil
}

func parseURLSet(root *etree.Element) []sitemapURL {
	var entries []sitemapURL
	for _, el := range root.SelectElements("url") {
		loc := elementText(el, "loc")
		if loc == "" {
			continue
		}
		entries = append(entries, sitemapURL{loc: loc, lastmod: lastModified(el)})
	}
	return entries
}

// lastModified prefers <lastmod> and falls back to the Google News
// <news:news><news:publication_date> element. Zero when neither parses.
func lastModified(el *etree.Element) time.Time {
	if t, ok := parseW3CDate(elementText(el, "lastmod")); ok {
		return t
	}
	if news := el.SelectElement("news"); news != nil {
		if t, ok := parseW3CDate(elementText(news, "publication_date")); ok {
			return t
		}
	}
	return time.Time{}
}

var w3cLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
}

func parseW3CDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range w3cLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func elementText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func (s *SitemapService) newRequest(ctx context.Context, method, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	return req, nil
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := s.newRequest(ctx, http.MethodGet, target)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, target string) (bool, error) {
	req, err := s.newRequest(ctx, http.MethodHead, target)
	if err != nil {
		return false, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
