package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"workbook/internal/calendar"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const cellWidth = 12

var (
	today     = color.New(color.Bold, color.Underline)
	todayEdge = color.New(color.Bold)
	muted     = color.New(color.Faint, color.FgWhite)
)

// Month prints the view as a week-per-block table: a row of day numbers
// followed by up to four summary rows
func (p *Printer) Month(v *calendar.View) {
	title := v.Month().Format("January 2006")
	width := calendar.Columns * (cellWidth + 1)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = heading.Fprintf(p.Out, "%s%s\n", strings.Repeat(" ", mid), title)

	tbl := uitable.New()
	tbl.MaxColWidth = cellWidth
	tbl.Separator = " "

	header := make([]interface{}, len(weekdays))
	for i, w := range weekdays {
		header[i] = faint.Sprint(w)
	}
	tbl.AddRow(header...)

	for _, week := range v.Rows() {
		labels := make([]interface{}, len(week))
		for i, cell := range week {
			labels[i] = dayLabel(cell)
		}
		tbl.AddRow(labels...)

		for line := 0; line < calendar.MaxSummaries+1; line++ {
			if !weekHasLine(week, line) {
				break
			}
			row := make([]interface{}, len(week))
			for i, cell := range week {
				if line < len(cell.Lines) {
					row[i] = truncate(cell.Lines[line], cellWidth)
				} else {
					row[i] = ""
				}
			}
			tbl.AddRow(row...)
		}
	}

	_, _ = fmt.Fprintln(p.Out, tbl)
}

func dayLabel(cell *calendar.Cell) string {
	switch cell.Marker {
	case calendar.MarkerMuted:
		return muted.Sprint("·")
	case calendar.MarkerToday:
		return today.Sprintf("[%2s]", cell.Label())
	case calendar.MarkerTodayEdge:
		return todayEdge.Sprintf("[%2s]", cell.Label())
	default:
		return fmt.Sprintf(" %2s", cell.Label())
	}
}

func weekHasLine(week []*calendar.Cell, line int) bool {
	for _, cell := range week {
		if line < len(cell.Lines) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
