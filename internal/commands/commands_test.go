package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"workbook/internal/calendar"
	"workbook/internal/config"
)

func init() {
	color.NoColor = true
}

// isolate keeps a user's config file and environment out of the test and
// returns a fresh database path
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigPathEnv, dir)
	t.Setenv(config.EnvPrefix+"_LOCALE", "en")
	t.Setenv(config.EnvPrefix+"_DB", filepath.Join(dir, "default.db"))
	return filepath.Join(dir, "work.db")
}

// execute runs cmd with args and returns everything it printed
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return buf.String(), err
}

// addEntry records a complete entry and fails the test otherwise
func addEntry(t *testing.T, dbFile, location, date string) {
	t.Helper()
	out, err := execute(t, NewAddCommand(),
		"--db", dbFile,
		"--location", location,
		"--date", date,
		"--time-start", "07:00",
		"--time-end", "15:00",
		"--vehicle", "ST-100-AA",
		"--km-start", "10500",
		"--km-end", "10620",
		"--work-type", "Service",
		"--work-order", "WO-42",
	)
	if err != nil {
		t.Fatalf("add %s on %s failed: %v\nOutput: %s", location, date, err, out)
	}
}

// scriptedChooser answers every Choose call with pick or err
type scriptedChooser struct {
	pick  int
	err   error
	calls int
	title string
	items []string
}

func (c *scriptedChooser) Choose(title string, items []string) (int, error) {
	c.calls++
	c.title = title
	c.items = items
	if c.err != nil {
		return -1, c.err
	}
	return c.pick, nil
}

func useChooser(t *testing.T, c calendar.Chooser) {
	t.Helper()
	previous := newChooser
	newChooser = func(*cobra.Command) calendar.Chooser { return c }
	t.Cleanup(func() { newChooser = previous })
}
