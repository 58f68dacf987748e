package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"workbook/internal/database"
	"workbook/internal/parser"
)

// NewLoadCommand creates the 'load' subcommand for importing CSV data into SQLite
// Usage: workbook load --file entries.csv [--db work.db] [--append]
func NewLoadCommand() *cobra.Command {
	var csvFile string
	var dbFile string
	var appendMode bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load work entries from a CSV file",
		Long: `Parse a CSV file of work entries and store them in the SQLite database.

The CSV file may start with a header naming the columns; otherwise the
columns are read in this order:
  location, date, time_start, time_end, vehicle, km_start, km_end, work_type, work_order
- date: DD.MM.YYYY. or YYYY-MM-DD
- time_start, time_end: HH:MM

Every field must be filled in; a file with an incomplete row loads nothing.

By default, loading replaces every existing entry in the database.
Use the --append flag to add the entries to the existing ones.

Example:
  workbook load --file entries.csv
  workbook load --file march.csv --db work.db --append`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoadCommand(cmd, csvFile, dbFile, appendMode)
		},
	}

	cmd.Flags().StringVarP(&csvFile, "file", "f", "", "Path to CSV file (required)")
	addDatabaseFlag(cmd, &dbFile)
	cmd.Flags().BoolVar(&appendMode, "append", false, "Append to existing entries (default: replace existing entries)")
	cmd.MarkFlagRequired("file")

	return cmd
}

// runLoadCommand executes the CSV loading logic
func runLoadCommand(cmd *cobra.Command, csvFile, dbFile string, appendMode bool) error {
	if _, err := os.Stat(csvFile); os.IsNotExist(err) {
		return fmt.Errorf("CSV file does not exist: %s", csvFile)
	}

	// Parse before touching the database so a bad file changes nothing
	entries, err := parser.ParseCSV(csvFile)
	if err != nil {
		return fmt.Errorf("failed to parse CSV file: %w", err)
	}

	s, err := openSession(cmd, dbFile, false)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loading CSV file: %s\n", csvFile)
	fmt.Fprintf(out, "Target database: %s\n", s.dbFile)
	if appendMode {
		fmt.Fprintf(out, "Mode: Append to existing entries\n")
	} else {
		fmt.Fprintf(out, "Mode: Replace existing entries\n")
	}
	fmt.Fprintf(out, "Parsed %d work entries\n", len(entries))

	count, err := database.InsertEntries(cmd.Context(), s.db, entries, appendMode)
	if err != nil {
		return fmt.Errorf("failed to insert work entries: %w", err)
	}

	s.printer.Success(fmt.Sprintf("Successfully loaded %d entries into database", count))
	return nil
}
