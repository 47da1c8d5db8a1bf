package tldr

import (
	"context"
	"time"
)

// Entry is a summary recorded in the history.
type Entry struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewEntry returns an unsaved entry for an article summary.
func NewEntry(s *ArticleSummary) *Entry {
	return &Entry{
		URL:     s.URL,
		Title:   s.Title,
		Summary: s.Summary,
	}
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	return nil
}

// EntryWriter records entries.
type EntryWriter interface {
	CreateEntry(ctx context.Context, entry *Entry) error
}

// HistoryService represents a service for managing recorded summaries.
type HistoryService interface {
	// CreateEntry records a new entry. ID, ContentHash and CreatedAt are set.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*Entry, error)

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if the entry does not exist.
	DeleteEntry(ctx context.Context, id string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
