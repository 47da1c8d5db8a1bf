package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tldr"
	"github.com/google/uuid"
)

var _ tldr.HistoryService = (*HistoryService)(nil)

// HistoryService implements tldr.HistoryService using SQLite.
type HistoryService struct {
	db *DB

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, Now: time.Now}
}

// hashContent returns the hex xxHash of the summarized content. Equal hashes
// for one URL mean a later run produced the same summary.
func hashContent(title, summary string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(title+"\x00"+summary))
	return hex.EncodeToString(b[:])
}

// CreateEntry records entry, assigning its ID, ContentHash and CreatedAt.
func (s *HistoryService) CreateEntry(ctx context.Context, entry *tldr.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.ContentHash = hashContent(entry.Title, entry.Summary)
	entry.CreatedAt = s.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, url, title, summary, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.URL, entry.Title, entry.Summary, entry.ContentHash, formatTime(entry.CreatedAt))
	return err
}

// FindEntryByID retrieves an entry by ID.
func (s *HistoryService) FindEntryByID(ctx context.Context, id string) (*tldr.Entry, error) {
	entries, err := s.FindEntries(ctx, tldr.EntryFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, tldr.Errorf(tldr.ENOTFOUND, "entry not found")
	}
	return entries[0], nil
}

// FindEntries retrieves entries matching filter, newest first.
func (s *HistoryService) FindEntries(ctx context.Context, filter tldr.EntryFilter) ([]*tldr.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, summary, content_hash, created_at FROM entries WHERE 1=1")
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*tldr.Entry{}
	for rows.Next() {
		var e tldr.Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.URL, &e.Title, &e.Summary, &e.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes an entry.
func (s *HistoryService) DeleteEntry(ctx context.Context, id string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM entries WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return tldr.Errorf(tldr.ENOTFOUND, "entry not found")
	}
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	return err
}
