package commands

import (
	"github.com/spf13/cobra"

	"workbook/internal/editor"
)

// NewDeleteCommand creates the 'delete' subcommand
// Usage: workbook delete --id 12
func NewDeleteCommand() *cobra.Command {
	var dbFile string
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one work entry",
		Long: `Delete one work entry by id.

Deleting an id that does not exist changes nothing and says so.

Example:
  workbook delete --id 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteCommand(cmd, dbFile, id)
		},
	}

	addDatabaseFlag(cmd, &dbFile)
	cmd.Flags().Int64Var(&id, "id", 0, "Entry id (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func runDeleteCommand(cmd *cobra.Command, dbFile string, id int64) error {
	s, err := openSession(cmd, dbFile, true)
	if err != nil {
		return err
	}
	defer s.Close()

	ed := editor.New(s.store, id, s.labels)
	rows, err := ed.Delete(cmd.Context())
	if err != nil {
		return err
	}

	s.printer.Outcome(rows, ed.DeleteOutcome(rows))
	return nil
}
