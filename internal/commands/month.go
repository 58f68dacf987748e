package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"workbook/internal/calendar"
	"workbook/internal/database"
	"workbook/internal/models"
)

// NewMonthCommand creates the 'month' subcommand, the calendar view
// Usage: workbook month [--month 03.2024] [--day 5]
func NewMonthCommand() *cobra.Command {
	var dbFile string
	var month string
	var day int
	var list bool

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a month calendar of work entries",
		Long: `Show a Monday-first calendar for one month with the locations worked
on each day. A day shows at most three locations followed by "...".

With --list every entry of the month is also printed as a table.
With --day the day is opened: a single entry is shown directly, several
entries ask which location to open first.

Example:
  workbook month
  workbook month --month 03.2024 --list
  workbook month --month 03.2024 --day 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonthCommand(cmd, dbFile, month, day, list)
		},
	}

	addDatabaseFlag(cmd, &dbFile)
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month as MM.YYYY (default: current month)")
	cmd.Flags().IntVar(&day, "day", 0, "Open the entries of this day of the month")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Also list the month's entries")

	return cmd
}

func runMonthCommand(cmd *cobra.Command, dbFile, month string, day int, list bool) error {
	now := time.Now()
	target := now
	if month != "" {
		parsed, err := models.ParseMonth(month)
		if err != nil {
			return err
		}
		target = parsed
	}
	if day != 0 && (day < 1 || day > models.DaysIn(target)) {
		return fmt.Errorf("day %d is not in %s", day, target.Format(models.MonthLayout))
	}

	s, err := openSession(cmd, dbFile, false)
	if err != nil {
		return err
	}
	defer s.Close()

	handlers := calendar.Handlers{
		Chooser:     newChooser(cmd),
		Navigator:   &viewerNavigator{s: s},
		ChooseTitle: s.labels.ChooseLocation,
	}

	ctx := cmd.Context()
	view := calendar.NewView(s.store, target, handlers, now)
	if err := view.Activate(ctx); err != nil {
		return err
	}
	s.printer.Month(view)

	if list {
		from, to := models.MonthBounds(target)
		entries, err := database.ListEntriesBetween(ctx, s.db, from, to)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		s.printer.Entries(entries, s.labels)
	}

	if day == 0 {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout())
	date := models.FormatDisplayDate(time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.Local))
	return view.Tap(ctx, date)
}
