// Package editor implements the entry editor: it loads one work entry into
// an editable form, validates required fields and writes updates or deletes
// back to the store.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workbook/internal/database"
	"workbook/internal/models"
)

// Store is the subset of the entry store the editor uses
type Store interface {
	Get(ctx context.Context, id int64) (models.WorkEntry, error)
	Update(ctx context.Context, e models.WorkEntry) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ValidationError lists the labels of every required field left blank
type ValidationError struct {
	Title   string
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", strings.ToLower(e.Title), strings.Join(e.Missing, ", "))
}

// Editor holds the form for one entry id
type Editor struct {
	store  Store
	id     int64
	labels models.Labels
	loaded bool

	// Form is edited in place by the caller between Load and Save
	Form models.WorkEntry
}

// New creates an editor for id without touching the store
func New(store Store, id int64, labels models.Labels) *Editor {
	return &Editor{
		store:  store,
		id:     id,
		labels: labels,
		Form:   models.WorkEntry{ID: id},
	}
}

// Open creates an editor and loads its entry
func Open(ctx context.Context, store Store, id int64, labels models.Labels) (*Editor, error) {
	e := New(store, id, labels)
	if err := e.Load(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// ID returns the entry id the editor is bound to
func (e *Editor) ID() int64 {
	return e.id
}

// Loaded reports whether Load found a backing row
func (e *Editor) Loaded() bool {
	return e.loaded
}

// Labels returns the label set used for validation messages
func (e *Editor) Labels() models.Labels {
	return e.labels
}

// Load fills the form from the store. A missing row leaves the form
// at its zero state and is not an error.
func (e *Editor) Load(ctx context.Context) error {
	e.loaded = false
	e.Form = models.WorkEntry{ID: e.id}
	if e.id == models.NoRecord {
		return nil
	}

	entry, err := e.store.Get(ctx, e.id)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	e.Form = entry
	e.loaded = true
	return nil
}

// Save validates the form and overwrites the stored row.
// It returns the rows affected, 0 when the row no longer exists.
// Blank required fields yield a *ValidationError and no write.
func (e *Editor) Save(ctx context.Context) (int64, error) {
	if missing := e.Form.MissingFields(e.labels); len(missing) > 0 {
		return 0, &ValidationError{
			Title:   e.labels.IncompleteTitle,
			Message: e.labels.IncompleteMessage,
			Missing: missing,
		}
	}

	form := e.Form
	form.ID = e.id
	return e.store.Update(ctx, form)
}

// Delete removes the entry and returns rows affected
func (e *Editor) Delete(ctx context.Context) (int64, error) {
	return e.store.Delete(ctx, e.id)
}

// SaveOutcome is the short message shown after Save
func (e *Editor) SaveOutcome(rows int64) string {
	if rows > 0 {
		return e.labels.Updated
	}
	return e.labels.NotUpdated
}

// DeleteOutcome is the short message shown after Delete
func (e *Editor) DeleteOutcome(rows int64) string {
	if rows > 0 {
		return e.labels.Deleted
	}
	return e.labels.NotDeleted
}
