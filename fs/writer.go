// Package fs saves summaries as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/tldr"
	"gopkg.in/yaml.v3"
)

// URLToPath maps an article URL to a relative file path under its host.
// Example: https://www.abc.net.au/news/2024/story → www.abc.net.au/news/2024/story.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", tldr.Errorf(tldr.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", tldr.Errorf(tldr.EINVALID, "URL %q has no host", rawURL)
	}

	host := strings.ToLower(u.Hostname())
	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case p == "":
		p = "index.md"
	case strings.HasSuffix(p, "/"):
		p += "index.md"
	default:
		p = strings.TrimSuffix(p, ".html")
		p = strings.TrimSuffix(p, ".htm")
		p += ".md"
	}

	// Cleaning under a leading slash keeps ".." from escaping the host dir.
	clean := strings.TrimPrefix(filepath.Clean("/"+filepath.FromSlash(p)), string(filepath.Separator))
	return filepath.Join(host, clean), nil
}

// frontMatter is the YAML header of a saved summary.
type frontMatter struct {
	ID      string `yaml:"id,omitempty"`
	Source  string `yaml:"source"`
	Title   string `yaml:"title"`
	Created string `yaml:"created"`
}

// FormatEntry renders an entry as Markdown with YAML front matter.
func FormatEntry(e *tldr.Entry) (string, error) {
	header, err := yaml.Marshal(frontMatter{
		ID:      e.ID,
		Source:  e.URL,
		Title:   e.Title,
		Created: e.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n# ")
	b.WriteString(e.Title)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(e.Summary))
	b.WriteString("\n")
	return b.String(), nil
}

var _ tldr.EntryWriter = (*Writer)(nil)

// Writer saves entries below a base directory, one file per article URL.
// A later summary of the same URL replaces the earlier file.
type Writer struct {
	baseDir string

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// CreateEntry writes entry to disk. The file is written to a temporary name
// and renamed into place so readers never see a partial summary.
func (w *Writer) CreateEntry(ctx context.Context, entry *tldr.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = w.Now()
	}

	rel, err := URLToPath(entry.URL)
	if err != nil {
		return err
	}
	full := filepath.Join(w.baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	content, err := FormatEntry(entry)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".tldr-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), full)
}
