// Package config provides shared configuration constants and settings
// for the workbook application
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultDatabaseFile is the SQLite database used when neither the
	// config file nor the --db flag name one
	DefaultDatabaseFile = "~/.workbook.db"

	// DatabaseFileDescription is the help text description for the database file flag
	DatabaseFileDescription = "Path to SQLite database file"

	// TableName is the table holding work entries
	TableName = "work_entries"

	// DefaultLocale selects the label set
	DefaultLocale = "en"

	// ConfigName is the config file name without extension
	ConfigName = ".workbook"

	// EnvPrefix prefixes every environment override, e.g. WORKBOOK_DB
	EnvPrefix = "WORKBOOK"

	// ConfigPathEnv names an extra directory to search for the config file
	ConfigPathEnv = "WORKBOOK_CONFIG_PATH"
)

// Settings is the resolved configuration
type Settings struct {
	DatabaseFile string
	Locale       string
}

// Load reads the config file and environment into Settings.
// A missing config file is not an error.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetDefault("db", DefaultDatabaseFile)
	v.SetDefault("locale", DefaultLocale)
	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	dbFile, err := ExpandPath(v.GetString("db"))
	if err != nil {
		return nil, err
	}

	return &Settings{
		DatabaseFile: dbFile,
		Locale:       v.GetString("locale"),
	}, nil
}

// ExpandPath resolves a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand path %q: %w", path, err)
	}
	return expanded, nil
}
