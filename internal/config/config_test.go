package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfigConstants tests that the configuration constants are properly defined
func TestConfigConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "DefaultDatabaseFile should live in the home directory",
			value:    DefaultDatabaseFile,
			expected: "~/.workbook.db",
		},
		{
			name:     "DatabaseFileDescription should not be empty",
			value:    DatabaseFileDescription,
			expected: "Path to SQLite database file",
		},
		{
			name:     "TableName should be work_entries",
			value:    TableName,
			expected: "work_entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.value)
			}
		})
	}
}

// TestLoadDefaults tests Load without a config file
func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigPathEnv, dir)
	t.Setenv("WORKBOOK_DB", "")
	t.Setenv("WORKBOOK_LOCALE", "")
	os.Unsetenv("WORKBOOK_DB")
	os.Unsetenv("WORKBOOK_LOCALE")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if strings.HasPrefix(settings.DatabaseFile, "~") {
		t.Errorf("Expected ~ to be expanded, got %q", settings.DatabaseFile)
	}
	if !strings.HasSuffix(settings.DatabaseFile, ".workbook.db") {
		t.Errorf("Expected default database file, got %q", settings.DatabaseFile)
	}
	if settings.Locale != DefaultLocale {
		t.Errorf("Expected locale %q, got %q", DefaultLocale, settings.Locale)
	}
}

// TestLoadConfigFile tests Load reading a yaml config file
func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "entries.db")
	content := "db: " + dbPath + "\nlocale: hr\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigName+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnv, dir)
	os.Unsetenv("WORKBOOK_DB")
	os.Unsetenv("WORKBOOK_LOCALE")

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.DatabaseFile != dbPath {
		t.Errorf("Expected database %q, got %q", dbPath, settings.DatabaseFile)
	}
	if settings.Locale != "hr" {
		t.Errorf("Expected locale hr, got %q", settings.Locale)
	}
}

// TestLoadEnvironmentOverride tests WORKBOOK_* variables
func TestLoadEnvironmentOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigPathEnv, dir)
	t.Setenv("WORKBOOK_DB", filepath.Join(dir, "env.db"))
	t.Setenv("WORKBOOK_LOCALE", "hr")

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.DatabaseFile != filepath.Join(dir, "env.db") {
		t.Errorf("Expected env database, got %q", settings.DatabaseFile)
	}
	if settings.Locale != "hr" {
		t.Errorf("Expected env locale, got %q", settings.Locale)
	}
}

// TestExpandPath tests home directory expansion
func TestExpandPath(t *testing.T) {
	got, err := ExpandPath("/tmp/plain.db")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != "/tmp/plain.db" {
		t.Errorf("Expected absolute path unchanged, got %q", got)
	}

	got, err = ExpandPath("~/x.db")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if strings.HasPrefix(got, "~") {
		t.Errorf("Expected ~ to be expanded, got %q", got)
	}
}
