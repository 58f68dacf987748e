// Package printers renders entries, month grids and query results for the terminal
package printers

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"workbook/internal/editor"
	"workbook/internal/models"
)

// Printer writes formatted output to Out
type Printer struct {
	Out io.Writer
}

// New returns a Printer writing to out, or to color.Output when out is nil
func New(out io.Writer) *Printer {
	if out == nil {
		out = color.Output
	}
	return &Printer{Out: out}
}

var (
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	heading = color.New(color.Bold)
	faint   = color.New(color.Faint)
)

// Success prints a short confirmation
func (p *Printer) Success(msg string) {
	_, _ = success.Fprintln(p.Out, msg)
}

// Failure prints a short notice that nothing changed
func (p *Printer) Failure(msg string) {
	_, _ = failure.Fprintln(p.Out, msg)
}

// Outcome picks Success or Failure by rows affected
func (p *Printer) Outcome(rows int64, msg string) {
	if rows > 0 {
		p.Success(msg)
		return
	}
	p.Failure(msg)
}

// Entry prints one entry as a label/value table
func (p *Printer) Entry(e models.WorkEntry, labels models.Labels) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("ID"), e.ID)
	tbl.AddRow(faint.Sprint(labels.Location), e.Location)
	tbl.AddRow(faint.Sprint(labels.Date), e.Date)
	tbl.AddRow(faint.Sprint(labels.TimeStart), e.TimeStart)
	tbl.AddRow(faint.Sprint(labels.TimeEnd), e.TimeEnd)
	tbl.AddRow(faint.Sprint(labels.Vehicle), e.Vehicle)
	tbl.AddRow(faint.Sprint(labels.KmStart), e.KmStart)
	tbl.AddRow(faint.Sprint(labels.KmEnd), e.KmEnd)
	tbl.AddRow(faint.Sprint(labels.WorkType), e.WorkType)
	tbl.AddRow(faint.Sprint(labels.WorkOrder), e.WorkOrder)
	_, _ = fmt.Fprintln(p.Out, tbl)
}

// Entries prints entries one per row
func (p *Printer) Entries(entries []models.WorkEntry, labels models.Labels) {
	if len(entries) == 0 {
		fmt.Fprintln(p.Out, "No entries found.")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 30
	tbl.AddRow(heading.Sprint("ID"), heading.Sprint(labels.Date), heading.Sprint(labels.TimeStart),
		heading.Sprint(labels.TimeEnd), heading.Sprint(labels.Location), heading.Sprint(labels.Vehicle),
		heading.Sprint(labels.WorkType), heading.Sprint(labels.WorkOrder))
	for _, e := range entries {
		tbl.AddRow(e.ID, e.Date, e.TimeStart, e.TimeEnd, e.Location, e.Vehicle, e.WorkType, e.WorkOrder)
	}
	_, _ = fmt.Fprintln(p.Out, tbl)
}

// ValidationError prints the incomplete-fields title and every missing label
func (p *Printer) ValidationError(verr *editor.ValidationError) {
	_, _ = failure.Fprintln(p.Out, verr.Title)
	fmt.Fprintln(p.Out, verr.Message)
	for _, label := range verr.Missing {
		fmt.Fprintf(p.Out, "    %s\n", label)
	}
}

// Results prints generic query rows with columns in name order
func (p *Printer) Results(results []map[string]interface{}) {
	if len(results) == 0 {
		fmt.Fprintln(p.Out, "No results found.")
		return
	}

	var columns []string
	for column := range results[0] {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	tbl := uitable.New()
	tbl.MaxColWidth = 40
	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = heading.Sprint(column)
	}
	tbl.AddRow(header...)

	for _, row := range results {
		cells := make([]interface{}, len(columns))
		for i, column := range columns {
			cells[i] = row[column]
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(p.Out, tbl)
	fmt.Fprintf(p.Out, "\n(%d rows)\n", len(results))
}
