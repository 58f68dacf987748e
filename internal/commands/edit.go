package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"workbook/internal/database"
	"workbook/internal/editor"
)

// NewEditCommand creates the 'edit' subcommand, the entry editor
// Usage: workbook edit --id 12 [--location Zadar] [--pick-date] [--pick-time-start]
func NewEditCommand() *cobra.Command {
	var dbFile string
	var id int64
	var fields fieldFlags
	var pickDateFlag, pickStart, pickEnd bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit and save one work entry",
		Long: `Load one work entry, change the fields given as flags and save it.

The whole row is overwritten. Saving is refused, and nothing is written,
when any of location, start/end time, vehicle, start/end kilometers, work
type or work order is blank; every blank field is listed.

The --pick-* flags open a prompt seeded with the field's current value
(today for an empty date, 12:00 for an empty time).

Example:
  workbook edit --id 12 --location Zadar --km-end 10700
  workbook edit --id 12 --pick-date --pick-time-end`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditCommand(cmd, dbFile, id, &fields, pickDateFlag, pickStart, pickEnd)
		},
	}

	addDatabaseFlag(cmd, &dbFile)
	cmd.Flags().Int64Var(&id, "id", 0, "Entry id (required)")
	cmd.MarkFlagRequired("id")
	fields.register(cmd)
	cmd.Flags().BoolVar(&pickDateFlag, "pick-date", false, "Prompt for the date")
	cmd.Flags().BoolVar(&pickStart, "pick-time-start", false, "Prompt for the start time")
	cmd.Flags().BoolVar(&pickEnd, "pick-time-end", false, "Prompt for the end time")

	return cmd
}

func runEditCommand(cmd *cobra.Command, dbFile string, id int64, fields *fieldFlags, pickDateFlag, pickStart, pickEnd bool) error {
	s, err := openSession(cmd, dbFile, true)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	ed, err := editor.Open(ctx, s.store, id, s.labels)
	if err != nil {
		return err
	}
	if !ed.Loaded() {
		return fmt.Errorf("%w: id %d", database.ErrNotFound, id)
	}

	fields.apply(cmd, &ed.Form)

	p := newPrompter(cmd)
	if pickDateFlag {
		if ed.Form.Date, err = p.pickDate(s.labels.Date, ed.Form.Date); err != nil {
			return err
		}
	}
	if pickStart {
		if ed.Form.TimeStart, err = p.pickTime(s.labels.TimeStart, ed.Form.TimeStart); err != nil {
			return err
		}
	}
	if pickEnd {
		if ed.Form.TimeEnd, err = p.pickTime(s.labels.TimeEnd, ed.Form.TimeEnd); err != nil {
			return err
		}
	}

	rows, err := ed.Save(ctx)
	return reportSave(s.printer, ed, rows, err)
}
