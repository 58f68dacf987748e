// Package commands implements the CLI commands for the work logbook
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"workbook/internal/calendar"
	"workbook/internal/config"
	"workbook/internal/database"
	"workbook/internal/editor"
	"workbook/internal/models"
	"workbook/internal/printers"
)

// session bundles what every command needs after flag parsing
type session struct {
	db      database.DB
	store   *database.EntryStore
	labels  models.Labels
	printer *printers.Printer
	dbFile  string
}

func (s *session) Close() error {
	return s.db.Close()
}

// addDatabaseFlag registers --db; an empty value defers to configuration
func addDatabaseFlag(cmd *cobra.Command, dbFile *string) {
	cmd.Flags().StringVarP(dbFile, "db", "d", "", config.DatabaseFileDescription+" (default from config, "+config.DefaultDatabaseFile+")")
}

// resolveSettings merges configuration with the --db flag
func resolveSettings(dbFlag string) (*config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbFlag != "" {
		path, err := config.ExpandPath(dbFlag)
		if err != nil {
			return nil, err
		}
		settings.DatabaseFile = path
	}
	return settings, nil
}

// openSession opens the database; mustExist refuses to create a new file
func openSession(cmd *cobra.Command, dbFlag string, mustExist bool) (*session, error) {
	settings, err := resolveSettings(dbFlag)
	if err != nil {
		return nil, err
	}

	if mustExist {
		if _, err := os.Stat(settings.DatabaseFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("database file does not exist: %s\nPlease add or load entries first", settings.DatabaseFile)
		}
	}

	db, err := database.Initialize(settings.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &session{
		db:      db,
		store:   database.NewEntryStore(db),
		labels:  models.LabelsFor(settings.Locale),
		printer: printers.New(cmd.OutOrStdout()),
		dbFile:  settings.DatabaseFile,
	}, nil
}

// reportSave prints the outcome of an editor save; validation failures
// are printed in full and returned so the command exits non-zero
func reportSave(p *printers.Printer, ed *editor.Editor, rows int64, err error) error {
	var verr *editor.ValidationError
	if errors.As(err, &verr) {
		p.ValidationError(verr)
		return fmt.Errorf("entry %d not saved: %w", ed.ID(), err)
	}
	if err != nil {
		return err
	}
	p.Outcome(rows, ed.SaveOutcome(rows))
	return nil
}

// writeNopCloser adapts the command's output for promptui
type writeNopCloser struct {
	io.Writer
}

func (writeNopCloser) Close() error { return nil }

// prompter runs promptui prompts against a command's input and output
type prompter struct {
	in    io.Reader
	out   io.Writer
	lines *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
}

// stdin returns the input for one prompt. A terminal is handed over as is;
// piped input is handed out one line per prompt, as every prompt reads
// ahead into its own buffer.
func (p *prompter) stdin() (io.ReadCloser, error) {
	if f, ok := p.in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return io.NopCloser(f), nil
	}

	if p.lines == nil {
		p.lines = bufio.NewReader(p.in)
	}
	line, err := p.lines.ReadString('\n')
	if err == io.EOF && line == "" {
		return nil, promptui.ErrEOF
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(strings.TrimSuffix(line, "\n") + "\n")), nil
}

// text asks for one line of input, seeded with def
func (p *prompter) text(label, def string, validate promptui.ValidateFunc) (string, error) {
	in, err := p.stdin()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate:  validate,
		Stdin:     in,
		Stdout:    writeNopCloser{p.out},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

// promptChooser is the location picker shown when a day has several entries
type promptChooser struct {
	p *prompter
}

func (c *promptChooser) Choose(title string, items []string) (int, error) {
	in, err := c.p.stdin()
	if errors.Is(err, promptui.ErrEOF) {
		return -1, calendar.ErrCancelled
	}
	if err != nil {
		return -1, fmt.Errorf("prompt failed: %w", err)
	}

	prompt := promptui.Select{
		Label:  title,
		Items:  items,
		Size:   10,
		Stdin:  in,
		Stdout: writeNopCloser{c.p.out},
	}

	i, _, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return -1, calendar.ErrCancelled
	}
	if err != nil {
		return -1, fmt.Errorf("prompt failed: %w", err)
	}
	return i, nil
}

// newChooser is replaced in tests
var newChooser = func(cmd *cobra.Command) calendar.Chooser {
	return &promptChooser{p: newPrompter(cmd)}
}

// viewerNavigator opens the entry viewer for a chosen id
type viewerNavigator struct {
	s *session
}

func (n *viewerNavigator) OpenEditor(ctx context.Context, id int64) error {
	ed, err := editor.Open(ctx, n.s.store, id, n.s.labels)
	if err != nil {
		return err
	}
	if !ed.Loaded() {
		return fmt.Errorf("%w: id %d", database.ErrNotFound, id)
	}
	n.s.printer.Entry(ed.Form, n.s.labels)
	return nil
}
