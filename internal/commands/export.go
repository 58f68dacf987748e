package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"workbook/internal/database"
	"workbook/internal/models"
	"workbook/internal/parser"
)

// NewExportCommand creates the 'export' subcommand for writing entries as CSV
// Usage: workbook export [--month 03.2024] [--file march.csv]
func NewExportCommand() *cobra.Command {
	var dbFile string
	var month string
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export work entries as CSV",
		Long: `Write work entries as CSV, ordered by date, with a header row that
'load' reads back.

Example:
  workbook export > all.csv
  workbook export --month 03.2024 --file march.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportCommand(cmd, dbFile, month, outFile)
		},
	}

	addDatabaseFlag(cmd, &dbFile)
	cmd.Flags().StringVarP(&month, "month", "m", "", "Only export this month, as MM.YYYY")
	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Output file (default: standard output)")

	return cmd
}

func runExportCommand(cmd *cobra.Command, dbFile, month, outFile string) error {
	s, err := openSession(cmd, dbFile, true)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	var entries []models.WorkEntry
	if month != "" {
		target, err := models.ParseMonth(month)
		if err != nil {
			return err
		}
		from, to := models.MonthBounds(target)
		entries, err = database.ListEntriesBetween(ctx, s.db, from, to)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
	} else {
		entries, err = database.ListAllEntries(ctx, s.db)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
	}

	if outFile == "" {
		if err := parser.WriteCSV(cmd.OutOrStdout(), entries); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		return nil
	}

	if err := writeExportFile(outFile, entries); err != nil {
		return err
	}
	s.printer.Success(fmt.Sprintf("Exported %d entries to %s", len(entries), outFile))
	return nil
}

// createFile is replaced in tests
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// writeExportFile writes entries to path; a failed close fails the export
func writeExportFile(path string, entries []models.WorkEntry) error {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := parser.WriteCSV(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
