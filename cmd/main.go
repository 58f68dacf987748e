// Package main provides the CLI entry point for the workbook logbook
// Entries are recorded with add, browsed by month with month, opened with
// show/edit/delete, and moved in and out as CSV with load and export.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"workbook/internal/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "workbook",
		Short: "A logbook of field work entries",
		Long: `Workbook keeps a logbook of field work in a local SQLite database.

Each entry records where and when the work was done, the vehicle and its
odometer readings, the type of work and the work order. Entries are shown
on a month calendar and opened from there to be viewed, edited or deleted.

Settings are read from .workbook.yaml in the current or home directory
and from WORKBOOK_* environment variables (WORKBOOK_DB, WORKBOOK_LOCALE).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewMonthCommand())
	rootCmd.AddCommand(commands.NewLoadCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewQueryCommand())

	if err := rootCmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
