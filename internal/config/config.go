package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// DefaultConfigFileName is the name of the TOML config file inside the
// storage directory.
const DefaultConfigFileName = "config.toml"

// Config holds all configuration options for the taskvault application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds durable-storage configuration
type StorageConfig struct {
	Dir            string `toml:"dir" env:"TV_STORAGE_DIR"`
	Filename       string `toml:"filename" env:"TV_STORAGE_FILENAME"`
	Key            string `toml:"key" env:"TV_STORAGE_KEY"`
	DirPermissions uint32 `toml:"dir_permissions" env:"TV_STORAGE_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat     string `toml:"date_format" env:"TV_DISPLAY_DATE_FORMAT"`
	DateTimeFormat string `toml:"datetime_format" env:"TV_DISPLAY_DATETIME_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"TV_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".tv")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDir,
			Filename:       "tv.db",
			Key:            "user-task-store",
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat:     "2006-01-02",
			DateTimeFormat: "2006-01-02 15:04",
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetConfigFilePath returns the full path to the TOML config file
func (c *Config) GetConfigFilePath() string {
	return filepath.Join(c.Storage.Dir, DefaultConfigFileName)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TV_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TV_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("TV_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if perms := os.Getenv("TV_STORAGE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if format := os.Getenv("TV_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if format := os.Getenv("TV_DISPLAY_DATETIME_FORMAT"); format != "" {
		c.Display.DateTimeFormat = format
	}

	// Application configuration
	if verbose := os.Getenv("TV_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.DateTimeFormat == "" {
		return &ConfigError{Field: "display.datetime_format", Message: "datetime format cannot be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
