package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of tldr.HistoryService.
type HistoryService struct {
	CreateEntryFn   func(ctx context.Context, entry *tldr.Entry) error
	FindEntryByIDFn func(ctx context.Context, id string) (*tldr.Entry, error)
	FindEntriesFn   func(ctx context.Context, filter tldr.EntryFilter) ([]*tldr.Entry, error)
	DeleteEntryFn   func(ctx context.Context, id string) error
}

func (s *HistoryService) CreateEntry(ctx context.Context, entry *tldr.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *HistoryService) FindEntryByID(ctx context.Context, id string) (*tldr.Entry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *HistoryService) FindEntries(ctx context.Context, filter tldr.EntryFilter) ([]*tldr.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *HistoryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}

var _ tldr.EntryWriter = (*EntryWriter)(nil)

// EntryWriter is a mock implementation of tldr.EntryWriter.
type EntryWriter struct {
	CreateEntryFn func(ctx context.Context, entry *tldr.Entry) error
}

func (w *EntryWriter) CreateEntry(ctx context.Context, entry *tldr.Entry) error {
	return w.CreateEntryFn(ctx, entry)
}
