package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"workbook/internal/config"
	"workbook/internal/database"
	"workbook/internal/printers"
)

// NewQueryCommand creates the 'query' subcommand for executing SQL queries
// Usage: workbook query [--db work.db] [--sql "SELECT * FROM work_entries"]
func NewQueryCommand() *cobra.Command {
	var dbFile string
	var sqlQuery string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Execute read-only SQL queries against the work entries",
		Long: `Execute SQL queries against the SQLite database of work entries.

Entries live in the ` + config.TableName + ` table; dates are stored as YYYY-MM-DD.

You can either provide a query directly via the --sql flag or enter interactive mode
to execute multiple queries.

SECURITY: Only read-only queries are allowed. Write operations (INSERT, UPDATE, DELETE,
CREATE, DROP, etc.) are blocked for data protection.

Common example queries:
  # Entries per location
  SELECT location, COUNT(*) AS entries FROM work_entries GROUP BY location;

  # Kilometers driven per vehicle in March 2024
  SELECT vehicle, SUM(CAST(km_end AS INTEGER) - CAST(km_start AS INTEGER)) AS km
  FROM work_entries WHERE date BETWEEN '2024-03-01' AND '2024-03-31'
  GROUP BY vehicle;

Interactive mode:
  workbook query

Direct query:
  workbook query --sql "SELECT COUNT(*) FROM work_entries"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCommand(cmd, dbFile, sqlQuery)
		},
	}

	addDatabaseFlag(cmd, &dbFile)
	cmd.Flags().StringVarP(&sqlQuery, "sql", "s", "", "SQL query to execute (if not provided, enters interactive mode)")

	return cmd
}

// runQueryCommand executes the query logic
func runQueryCommand(cmd *cobra.Command, dbFile, sqlQuery string) error {
	s, err := openSession(cmd, dbFile, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if sqlQuery != "" {
		return executeSingleQuery(cmd.Context(), s.db, s.printer, sqlQuery)
	}

	return enterInteractiveMode(cmd.Context(), s.db, s.printer, cmd.InOrStdin(), s.dbFile)
}

// executeSingleQuery runs a single SQL query and displays results
func executeSingleQuery(ctx context.Context, db database.DB, p *printers.Printer, query string) error {
	fmt.Fprintf(p.Out, "Executing query: %s\n\n", query)

	if err := ValidateReadOnlyQuery(query); err != nil {
		return fmt.Errorf("query validation failed: %w", err)
	}

	results, err := database.ExecuteQuery(ctx, db, query)
	if err != nil {
		return fmt.Errorf("query execution failed: %w", err)
	}

	p.Results(results)
	return nil
}

// enterInteractiveMode provides an interactive SQL query interface
func enterInteractiveMode(ctx context.Context, db database.DB, p *printers.Printer, in io.Reader, dbFile string) error {
	out := p.Out
	fmt.Fprintf(out, "Connected to database: %s\n", dbFile)
	fmt.Fprintln(out, "Interactive SQL query mode. Type 'exit' or 'quit' to exit.")
	fmt.Fprintln(out, "SECURITY: Only read-only queries (SELECT, WITH, EXPLAIN) are allowed.")
	fmt.Fprintln(out, "Example queries:")
	fmt.Fprintln(out, "  SELECT location, COUNT(*) FROM work_entries GROUP BY location;")
	fmt.Fprintln(out, "  SELECT * FROM work_entries WHERE date >= '2024-03-01' ORDER BY date;")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "sql> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "exit" || input == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			break
		}

		if input == "" {
			continue
		}

		if err := ValidateReadOnlyQuery(input); err != nil {
			p.Failure(fmt.Sprintf("Error: %v", err))
			fmt.Fprintln(out)
			continue
		}

		results, err := database.ExecuteQuery(ctx, db, input)
		if err != nil {
			p.Failure(fmt.Sprintf("Error: %v", err))
			fmt.Fprintln(out)
			continue
		}

		p.Results(results)
		fmt.Fprintln(out)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

var (
	lineComment  = regexp.MustCompile(`--.*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// readOnlyPrefixes are the statements a query may start with
	readOnlyPrefixes = []string{"select", "with", "explain"}

	readOnlyPragmas = []string{
		"pragma table_info(",
		"pragma index_list(",
		"pragma index_info(",
		"pragma foreign_key_list(",
		"pragma schema_version",
		"pragma user_version",
		"pragma database_list",
		"pragma compile_options",
	}

	forbiddenKeywords = compileKeywords(
		"insert", "update", "delete", "drop", "create", "alter",
		"truncate", "replace", "merge", "upsert",
		"attach", "detach", "vacuum", "reindex",
		"begin", "commit", "rollback", "savepoint",
	)
)

type keyword struct {
	word string
	re   *regexp.Regexp
}

func compileKeywords(words ...string) []keyword {
	out := make([]keyword, len(words))
	for i, w := range words {
		out[i] = keyword{word: w, re: regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)}
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// ValidateReadOnlyQuery ensures the SQL query is read-only: one SELECT,
// WITH, EXPLAIN or read-only PRAGMA statement with no write keywords
// anywhere, subqueries included
func ValidateReadOnlyQuery(query string) error {
	normalized := strings.ToLower(query)
	normalized = lineComment.ReplaceAllString(normalized, "")
	normalized = blockComment.ReplaceAllString(normalized, "")
	normalized = strings.TrimSpace(normalized)

	if normalized == "" {
		return fmt.Errorf("empty query")
	}

	if strings.HasPrefix(normalized, "pragma") {
		if !hasAnyPrefix(normalized, readOnlyPragmas) {
			return fmt.Errorf("PRAGMA statement not allowed. Only read-only PRAGMA statements are permitted")
		}
	} else if !hasAnyPrefix(normalized, readOnlyPrefixes) {
		return fmt.Errorf("only read-only queries are allowed (SELECT, WITH, EXPLAIN, and read-only PRAGMA)")
	}

	for _, kw := range forbiddenKeywords {
		if kw.re.MatchString(normalized) {
			return fmt.Errorf("forbidden keyword '%s' detected. Only read-only operations are allowed", strings.ToUpper(kw.word))
		}
	}

	// One statement, optionally followed by a trailing semicolon
	if len(strings.Split(normalized, ";")) > 2 {
		return fmt.Errorf("multiple statements not allowed. Please execute one query at a time")
	}

	return nil
}
