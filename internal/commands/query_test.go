package commands

import (
	"fmt"
	"strings"
	"testing"
)

// TestValidateReadOnlyQuery tests which work entry queries are let through
func TestValidateReadOnlyQuery(t *testing.T) {
	const (
		readOnly  = "only read-only queries are allowed"
		forbidden = "forbidden keyword"
	)

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{"month by stored date", "SELECT location, date FROM work_entries WHERE date BETWEEN '2024-03-01' AND '2024-03-31' ORDER BY date", ""},
		{"kilometers per vehicle", "SELECT vehicle, SUM(CAST(km_end AS INTEGER) - CAST(km_start AS INTEGER)) AS km FROM work_entries GROUP BY vehicle;", ""},
		{"hours per day", "WITH d AS (SELECT date, (strftime('%s', time_end) - strftime('%s', time_start)) / 3600.0 AS h FROM work_entries) SELECT date, SUM(h) FROM d GROUP BY date", ""},
		{"lower case with comments", "select * from work_entries -- all\n/* of them */", ""},
		{"query plan", "EXPLAIN QUERY PLAN SELECT * FROM work_entries WHERE date = '2024-03-05'", ""},
		{"keyword inside a word", "SELECT * FROM work_entries WHERE work_type = 'Meter replacement' AND vehicle = 'dropbox_van'", ""},

		{"overwrite odometer", "UPDATE work_entries SET km_end = '10700' WHERE _id = 1", readOnly},
		{"add an entry", "INSERT INTO work_entries (location, date) VALUES ('Split', '2024-03-05')", readOnly},
		{"clear a month", "DELETE FROM work_entries WHERE date LIKE '2024-03-%'", readOnly},
		{"drop after select", "SELECT * FROM work_entries; drop table work_entries;", forbidden + " 'DROP'"},
		{"write in subquery", "SELECT * FROM (INSERT INTO work_entries (location) VALUES ('Knin'))", forbidden + " 'INSERT'"},
		{"two selects", "SELECT COUNT(*) FROM work_entries; SELECT 1;", "multiple statements not allowed"},
		{"transaction", "BEGIN; SELECT * FROM work_entries; COMMIT;", readOnly},
		{"attach", "ATTACH DATABASE 'other.db' AS other", readOnly},
		{"write pragma", "PRAGMA journal_mode = WAL", "PRAGMA statement not allowed"},
		{"empty", "  \n\t ", "empty query"},
		{"comment only", "-- SELECT * FROM work_entries", "empty query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReadOnlyQuery(tt.query)

			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("ValidateReadOnlyQuery() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateReadOnlyQuery() error = %v, expected to contain '%s'", err, tt.errMsg)
			}
		})
	}
}

// TestValidateReadOnlyQueryPragmas tests specific PRAGMA validations
func TestValidateReadOnlyQueryPragmas(t *testing.T) {
	validPragmas := []string{
		"PRAGMA table_info(work_entries)",
		"PRAGMA index_list(work_entries)",
		"PRAGMA index_info(idx_work_entries_date)",
		"PRAGMA foreign_key_list(work_entries)",
		"PRAGMA schema_version",
		"PRAGMA user_version",
		"PRAGMA database_list",
		"PRAGMA compile_options",
	}

	for _, pragma := range validPragmas {
		t.Run("valid_"+pragma, func(t *testing.T) {
			err := ValidateReadOnlyQuery(pragma)
			if err != nil {
				t.Errorf("ValidateReadOnlyQuery() for '%s' error = %v, want nil", pragma, err)
			}
		})
	}

	invalidPragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA cache_size = 10000",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA foreign_keys = ON",
		"PRAGMA recursive_triggers = ON",
	}

	for _, pragma := range invalidPragmas {
		t.Run("invalid_"+pragma, func(t *testing.T) {
			err := ValidateReadOnlyQuery(pragma)
			if err == nil {
				t.Errorf("ValidateReadOnlyQuery() for '%s' expected error, got nil", pragma)
			}
		})
	}
}

// BenchmarkValidateReadOnlyQuery benchmarks the validation function
func BenchmarkValidateReadOnlyQuery(b *testing.B) {
	queries := []string{
		"SELECT * FROM work_entries",
		"SELECT COUNT(*) FROM work_entries WHERE date BETWEEN '2024-03-01' AND '2024-03-31'",
		"WITH stats AS (SELECT COUNT(*) as cnt FROM work_entries) SELECT * FROM stats",
		"EXPLAIN QUERY PLAN SELECT * FROM work_entries WHERE location = 'Split'",
		"PRAGMA table_info(work_entries)",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, query := range queries {
			_ = ValidateReadOnlyQuery(query)
		}
	}
}

// ExampleValidateReadOnlyQuery demonstrates the query validation
func ExampleValidateReadOnlyQuery() {
	// Valid query
	err := ValidateReadOnlyQuery("SELECT COUNT(*) FROM work_entries")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Println("Valid read-only query")
	}

	// Invalid query
	err = ValidateReadOnlyQuery("DROP TABLE work_entries")
	if err != nil {
		fmt.Printf("Blocked: %v\n", err)
	}

	// Output:
	// Valid read-only query
	// Blocked: only read-only queries are allowed (SELECT, WITH, EXPLAIN, and read-only PRAGMA)
}

// TestQueryCommandSQL tests a single query given with --sql
func TestQueryCommandSQL(t *testing.T) {
	dbFile := isolate(t)
	addEntry(t, dbFile, "Split", "05.03.2024.")
	addEntry(t, dbFile, "Split", "06.03.2024.")

	out, err := execute(t, NewQueryCommand(), "--db", dbFile,
		"--sql", "SELECT location, COUNT(*) AS entries FROM work_entries GROUP BY location")
	if err != nil {
		t.Fatalf("query failed: %v\nOutput: %s", err, out)
	}
	for _, want := range []string{"entries", "location", "Split", "(1 rows)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	_, err = execute(t, NewQueryCommand(), "--db", dbFile, "--sql", "DELETE FROM work_entries")
	if err == nil || !strings.Contains(err.Error(), "query validation failed") {
		t.Errorf("Expected validation failure, got %v", err)
	}
	if got := countEntries(t, dbFile); got != 2 {
		t.Errorf("Expected entries untouched, got %d", got)
	}
}

// TestQueryCommandStoredDates tests that dates are queried in their stored YYYY-MM-DD form
func TestQueryCommandStoredDates(t *testing.T) {
	dbFile := isolate(t)
	addEntry(t, dbFile, "Split", "05.03.2024.")

	out, err := execute(t, NewQueryCommand(), "--db", dbFile, "--sql", "SELECT date FROM work_entries")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !strings.Contains(out, "2024-03-05") {
		t.Errorf("Expected stored YYYY-MM-DD date, got:\n%s", out)
	}
}

// TestQueryCommandInteractive tests the interactive query loop
func TestQueryCommandInteractive(t *testing.T) {
	dbFile := isolate(t)
	addEntry(t, dbFile, "Split", "05.03.2024.")

	cmd := NewQueryCommand()
	cmd.SetIn(strings.NewReader("SELECT COUNT(*) AS n FROM work_entries\n\nDROP TABLE work_entries\nquit\nSELECT 1\n"))
	out, err := execute(t, cmd, "--db", dbFile)
	if err != nil {
		t.Fatalf("interactive query failed: %v", err)
	}

	for _, want := range []string{"Connected to database", "sql> ", "(1 rows)", "Error: only read-only queries", "Goodbye!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "(1 rows)") != 1 {
		t.Errorf("Queries after quit should not run:\n%s", out)
	}
}
