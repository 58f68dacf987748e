package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"workbook/internal/database"
	"workbook/internal/editor"
)

// NewShowCommand creates the 'show' subcommand, the entry viewer
// Usage: workbook show --id 12
func NewShowCommand() *cobra.Command {
	var dbFile string
	var id int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one work entry",
		Long: `Show every field of one work entry.

Example:
  workbook show --id 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCommand(cmd, dbFile, id)
		},
	}

	addDatabaseFlag(cmd, &dbFile)
	cmd.Flags().Int64Var(&id, "id", 0, "Entry id (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func runShowCommand(cmd *cobra.Command, dbFile string, id int64) error {
	s, err := openSession(cmd, dbFile, true)
	if err != nil {
		return err
	}
	defer s.Close()

	ed, err := editor.Open(cmd.Context(), s.store, id, s.labels)
	if err != nil {
		return err
	}
	if !ed.Loaded() {
		return fmt.Errorf("%w: id %d", database.ErrNotFound, id)
	}

	s.printer.Entry(ed.Form, s.labels)
	return nil
}
