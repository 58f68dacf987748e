package database

import (
	"context"
	"time"

	"workbook/internal/models"
)

// EntryStore exposes the work entry operations as methods so views can
// depend on small interfaces instead of the DB handle
type EntryStore struct {
	db DB
}

// NewEntryStore wraps an initialized database
func NewEntryStore(db DB) *EntryStore {
	return &EntryStore{db: db}
}

// Insert stores e as a new row and returns its id
func (s *EntryStore) Insert(ctx context.Context, e models.WorkEntry) (int64, error) {
	return InsertEntry(ctx, s.db, e)
}

// Get returns the entry with id, or ErrNotFound
func (s *EntryStore) Get(ctx context.Context, id int64) (models.WorkEntry, error) {
	return GetEntry(ctx, s.db, id)
}

// Update overwrites every field of the row with e.ID and returns the
// number of rows changed
func (s *EntryStore) Update(ctx context.Context, e models.WorkEntry) (int64, error) {
	return UpdateEntry(ctx, s.db, e)
}

// Delete removes the row with id and returns the number of rows removed
func (s *EntryStore) Delete(ctx context.Context, id int64) (int64, error) {
	return DeleteEntry(ctx, s.db, id)
}

// SummariesBetween returns id, date and location of the entries dated
// from through to, ordered by date
func (s *EntryStore) SummariesBetween(ctx context.Context, from, to time.Time) ([]models.EntrySummary, error) {
	return ListSummariesBetween(ctx, s.db, from, to)
}

// SummariesOn returns the summaries of one display date
func (s *EntryStore) SummariesOn(ctx context.Context, date string) ([]models.EntrySummary, error) {
	return ListSummariesOn(ctx, s.db, date)
}
