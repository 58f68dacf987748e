package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"workbook/internal/editor"
	"workbook/internal/models"
)

// NewAddCommand creates the 'add' subcommand for recording a work entry
// Usage: workbook add --location Split --time-start 07:00 ... [--date 05.03.2024.] [-i]
func NewAddCommand() *cobra.Command {
	var dbFile string
	var fields fieldFlags
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new work entry",
		Long: `Record a new work entry.

Every field except the date is required. The date defaults to today.
With --interactive, fields not given as flags are prompted for; date and
time prompts are seeded with today and 12:00.

Example:
  workbook add --location Split --time-start 07:00 --time-end 15:00 \
    --vehicle ST-100-AA --km-start 10500 --km-end 10620 \
    --work-type Service --work-order WO-42
  workbook add -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCommand(cmd, dbFile, &fields, interactive)
		},
	}

	addDatabaseFlag(cmd, &dbFile)
	fields.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for fields not given as flags")

	return cmd
}

// runAddCommand validates and stores the new entry
func runAddCommand(cmd *cobra.Command, dbFile string, fields *fieldFlags, interactive bool) error {
	s, err := openSession(cmd, dbFile, false)
	if err != nil {
		return err
	}
	defer s.Close()

	form := models.WorkEntry{ID: models.NoRecord}
	fields.apply(cmd, &form)

	if interactive {
		if err := promptBlank(newPrompter(cmd), &form, s.labels); err != nil {
			return err
		}
	}
	if form.Date == "" {
		form.Date = models.FormatDisplayDate(time.Now())
	}

	if missing := form.MissingFields(s.labels); len(missing) > 0 {
		verr := &editor.ValidationError{
			Title:   s.labels.IncompleteTitle,
			Message: s.labels.IncompleteMessage,
			Missing: missing,
		}
		s.printer.ValidationError(verr)
		return fmt.Errorf("entry not saved: %w", verr)
	}

	id, err := s.store.Insert(cmd.Context(), form)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	s.printer.Success(fmt.Sprintf("%s (id %d)", s.labels.Created, id))
	return nil
}
