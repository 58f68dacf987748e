// Package calendar lays out a Monday-first month grid of 42 day cells,
// buckets the month's work entries into them and resolves a tap on a day
// into the entry to open.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"workbook/internal/models"
)

const (
	// GridCells is the fixed number of cells, 6 weeks of 7 days
	GridCells = 42

	// Columns is the number of days per grid row
	Columns = 7

	// MaxSummaries is the number of locations a cell shows before overflowing
	MaxSummaries = 3

	// OverflowMarker replaces the 4th summary of a day
	OverflowMarker = "..."
)

var (
	// ErrNoEntries is returned by Tap when the day has nothing to open
	ErrNoEntries = errors.New("no entries on this day")

	// ErrCancelled is returned by a Chooser when the user dismisses it
	ErrCancelled = errors.New("selection cancelled")
)

// Marker is the visual variant of a cell
type Marker int

const (
	MarkerNone Marker = iota
	// MarkerToday highlights today's cell
	MarkerToday
	// MarkerTodayEdge highlights today's cell in the last column,
	// where the right border is not drawn
	MarkerTodayEdge
	// MarkerMuted shades cells outside the month
	MarkerMuted
)

// Cell is one slot of the grid
type Cell struct {
	Index   int
	Day     int
	Date    string
	InMonth bool
	Today   bool
	Marker  Marker
	Lines   []string
}

// Label is the day number shown at the top of an in-month cell
func (c *Cell) Label() string {
	if !c.InMonth {
		return ""
	}
	return strconv.Itoa(c.Day)
}

// ChildCount counts the label row plus summary lines
func (c *Cell) ChildCount() int {
	return 1 + len(c.Lines)
}

// Store is the read side of the entry store the calendar uses
type Store interface {
	SummariesBetween(ctx context.Context, from, to time.Time) ([]models.EntrySummary, error)
	SummariesOn(ctx context.Context, date string) ([]models.EntrySummary, error)
}

// Chooser asks the user to pick one of items and returns its index
type Chooser interface {
	Choose(title string, items []string) (int, error)
}

// Navigator opens the entry editor
type Navigator interface {
	OpenEditor(ctx context.Context, id int64) error
}

// Handlers are the collaborators a tap is resolved with
type Handlers struct {
	Chooser     Chooser
	Navigator   Navigator
	ChooseTitle string
}

// View is the calendar for one month. It owns its cells and the
// date-to-cell index, both rebuilt by Layout.
type View struct {
	store    Store
	handlers Handlers
	month    time.Time
	cells    [GridCells]*Cell
	byDate   map[string]*Cell
}

// NewView creates a view for the month containing month and lays it out
// with today as the current date
func NewView(store Store, month time.Time, handlers Handlers, today time.Time) *View {
	v := &View{
		store:    store,
		handlers: handlers,
		month:    month,
	}
	v.Layout(today)
	return v
}

// Month returns the month context
func (v *View) Month() time.Time {
	return v.month
}

// Offset returns the weekday of day 1 of month with Monday as 0
func Offset(month time.Time) int {
	first, _ := models.MonthBounds(month)
	return (int(first.Weekday()) + 6) % 7
}

// Layout rebuilds the 42 cells and the date index for the month
func (v *View) Layout(today time.Time) {
	first, last := models.MonthBounds(v.month)
	offset := Offset(v.month)
	firstDay := first.Day() + offset
	lastDay := last.Day() + offset

	v.byDate = make(map[string]*Cell, last.Day())
	for i := 1; i <= GridCells; i++ {
		cell := &Cell{Index: i}
		v.cells[i-1] = cell

		if i < firstDay || i > lastDay {
			cell.Marker = MarkerMuted
			continue
		}

		date := first.AddDate(0, 0, i-firstDay)
		cell.InMonth = true
		cell.Day = i - offset
		cell.Date = models.FormatDisplayDate(date)

		if models.SameDay(date, today) {
			cell.Today = true
			if i%Columns == 0 {
				cell.Marker = MarkerTodayEdge
			} else {
				cell.Marker = MarkerToday
			}
		}
		v.byDate[cell.Date] = cell
	}
}

// Cell returns the cell at grid index i, 1 through 42
func (v *View) Cell(i int) *Cell {
	if i < 1 || i > GridCells {
		return nil
	}
	return v.cells[i-1]
}

// CellFor returns the in-month cell registered under a canonical date
func (v *View) CellFor(date string) (*Cell, bool) {
	cell, ok := v.byDate[date]
	return cell, ok
}

// Rows returns the grid as 6 rows of 7 cells
func (v *View) Rows() [][]*Cell {
	rows := make([][]*Cell, 0, GridCells/Columns)
	for r := 0; r < GridCells; r += Columns {
		rows = append(rows, v.cells[r:r+Columns])
	}
	return rows
}

// Clear drops every summary line, keeping day labels
func (v *View) Clear() {
	for _, cell := range v.byDate {
		cell.Lines = nil
	}
}

// Add appends a summary to its day cell. Days show up to MaxSummaries
// locations followed by OverflowMarker; later entries are not shown.
// It reports whether a line was added.
func (v *View) Add(s models.EntrySummary) bool {
	cell, ok := v.byDate[s.Date]
	if !ok || cell.ChildCount() > MaxSummaries+1 {
		return false
	}

	if cell.ChildCount() <= MaxSummaries {
		cell.Lines = append(cell.Lines, s.Location)
	} else {
		cell.Lines = append(cell.Lines, OverflowMarker)
	}
	return true
}

// Activate clears the cells and repopulates them from the store
func (v *View) Activate(ctx context.Context) error {
	v.Clear()

	from, to := models.MonthBounds(v.month)
	summaries, err := v.store.SummariesBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to load month entries: %w", err)
	}

	for _, s := range summaries {
		v.Add(s)
	}
	return nil
}

// Tap resolves a tap on the cell for date. A single entry opens the
// editor directly; several ask the Chooser for a location first.
func (v *View) Tap(ctx context.Context, date string) error {
	cell, ok := v.byDate[date]
	if !ok || len(cell.Lines) == 0 {
		return fmt.Errorf("%w: %s", ErrNoEntries, date)
	}

	summaries, err := v.store.SummariesOn(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load entries on %s: %w", date, err)
	}

	switch len(summaries) {
	case 0:
		return fmt.Errorf("%w: %s", ErrNoEntries, date)
	case 1:
		return v.handlers.Navigator.OpenEditor(ctx, summaries[0].ID)
	}

	locations := make([]string, len(summaries))
	for i, s := range summaries {
		locations[i] = s.Location
	}

	which, err := v.handlers.Chooser.Choose(v.handlers.ChooseTitle, locations)
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if which < 0 || which >= len(summaries) {
		return fmt.Errorf("choice %d out of range", which)
	}

	return v.handlers.Navigator.OpenEditor(ctx, summaries[which].ID)
}
