package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"workbook/internal/models"
)

// ErrNotFound is returned when no entry has the requested id
var ErrNotFound = errors.New("entry not found")

const (
	entryColumns = `_id, location, date, time_start, time_end, vehicle, km_start, km_end, work_type, work_order`

	insertEntrySQL = `
	INSERT INTO work_entries (location, date, time_start, time_end, vehicle, km_start, km_end, work_type, work_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	selectEntrySQL = `SELECT ` + entryColumns + ` FROM work_entries WHERE _id = ?`
	updateEntrySQL = `
	UPDATE work_entries
	SET location = ?, date = ?, time_start = ?, time_end = ?, vehicle = ?,
		km_start = ?, km_end = ?, work_type = ?, work_order = ?
	WHERE _id = ?
	`
	deleteEntrySQL = `DELETE FROM work_entries WHERE _id = ?`

	summariesBetweenSQL = `SELECT _id, location, date FROM work_entries WHERE date BETWEEN ? AND ? ORDER BY date, _id`
	summariesOnSQL      = `SELECT _id, location, date FROM work_entries WHERE date = ? ORDER BY _id`
	entriesBetweenSQL   = `SELECT ` + entryColumns + ` FROM work_entries WHERE date BETWEEN ? AND ? ORDER BY date, time_start, _id`
	allEntriesSQL       = `SELECT ` + entryColumns + ` FROM work_entries ORDER BY date, time_start, _id`
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// entryArgs returns the column values of e in insert/update order,
// converting the display date to its stored form
func entryArgs(e models.WorkEntry) ([]interface{}, error) {
	date, err := models.ToStorageDate(e.Date)
	if err != nil {
		return nil, err
	}
	return []interface{}{
		e.Location, date, e.TimeStart, e.TimeEnd, e.Vehicle,
		e.KmStart, e.KmEnd, e.WorkType, e.WorkOrder,
	}, nil
}

func scanEntry(row rowScanner) (models.WorkEntry, error) {
	var e models.WorkEntry
	var stored string
	err := row.Scan(&e.ID, &e.Location, &stored, &e.TimeStart, &e.TimeEnd,
		&e.Vehicle, &e.KmStart, &e.KmEnd, &e.WorkType, &e.WorkOrder)
	if err != nil {
		return models.WorkEntry{}, err
	}

	e.Date, err = models.FromStorageDate(stored)
	if err != nil {
		return models.WorkEntry{}, fmt.Errorf("entry %d: %w", e.ID, err)
	}
	return e, nil
}

func scanSummary(row rowScanner) (models.EntrySummary, error) {
	var s models.EntrySummary
	var stored string
	if err := row.Scan(&s.ID, &s.Location, &stored); err != nil {
		return models.EntrySummary{}, err
	}

	date, err := models.FromStorageDate(stored)
	if err != nil {
		return models.EntrySummary{}, fmt.Errorf("entry %d: %w", s.ID, err)
	}
	s.Date = date
	return s, nil
}

// InsertEntry stores a new entry and returns the id assigned to it
func InsertEntry(ctx context.Context, db DB, e models.WorkEntry) (int64, error) {
	args, err := entryArgs(e)
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, insertEntrySQL, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new entry id: %w", err)
	}
	return id, nil
}

// InsertEntries bulk inserts entries inside one transaction
// If appendMode is false, existing entries are cleared first
func InsertEntries(ctx context.Context, db DB, entries []models.WorkEntry, appendMode bool) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if !appendMode {
		if _, err := tx.ExecContext(ctx, "DELETE FROM work_entries"); err != nil {
			return 0, fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertEntrySQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var insertedCount int64
	for i, entry := range entries {
		args, err := entryArgs(entry)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert entry %d: %w", i+1, err)
		}
		insertedCount++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit entries: %w", err)
	}

	return insertedCount, nil
}

// GetEntry loads the entry with the given id
// Returns ErrNotFound when no row matches
func GetEntry(ctx context.Context, db DB, id int64) (models.WorkEntry, error) {
	e, err := scanEntry(db.QueryRowContext(ctx, selectEntrySQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkEntry{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return models.WorkEntry{}, fmt.Errorf("failed to load entry %d: %w", id, err)
	}
	return e, nil
}

// UpdateEntry overwrites every field of the row keyed by e.ID
// Returns the number of rows affected, 0 when the id no longer exists
func UpdateEntry(ctx context.Context, db DB, e models.WorkEntry) (int64, error) {
	args, err := entryArgs(e)
	if err != nil {
		return 0, err
	}
	args = append(args, e.ID)

	result, err := db.ExecContext(ctx, updateEntrySQL, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update entry %d: %w", e.ID, err)
	}
	return result.RowsAffected()
}

// DeleteEntry removes the row keyed by id and returns rows affected
func DeleteEntry(ctx context.Context, db DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx, deleteEntrySQL, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	return result.RowsAffected()
}

// ListSummariesBetween returns (id, location, date) of every entry dated
// within [from, to], both days inclusive
func ListSummariesBetween(ctx context.Context, db DB, from, to time.Time) ([]models.EntrySummary, error) {
	rows, err := db.QueryContext(ctx, summariesBetweenSQL,
		from.Format(models.StorageDateLayout), to.Format(models.StorageDateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	return collectSummaries(rows)
}

// ListSummariesOn returns (id, location, date) of every entry on a display date
func ListSummariesOn(ctx context.Context, db DB, date string) ([]models.EntrySummary, error) {
	stored, err := models.ToStorageDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, summariesOnSQL, stored)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries on %s: %w", date, err)
	}
	defer rows.Close()

	return collectSummaries(rows)
}

// ListEntriesBetween returns full entries dated within [from, to]
func ListEntriesBetween(ctx context.Context, db DB, from, to time.Time) ([]models.WorkEntry, error) {
	rows, err := db.QueryContext(ctx, entriesBetweenSQL,
		from.Format(models.StorageDateLayout), to.Format(models.StorageDateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListAllEntries returns every entry in date order
func ListAllEntries(ctx context.Context, db DB) ([]models.WorkEntry, error) {
	rows, err := db.QueryContext(ctx, allEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectSummaries(rows *sql.Rows) ([]models.EntrySummary, error) {
	var summaries []models.EntrySummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return summaries, nil
}

func collectEntries(rows *sql.Rows) ([]models.WorkEntry, error) {
	var entries []models.WorkEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return entries, nil
}
