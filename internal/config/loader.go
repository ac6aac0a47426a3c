package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file (written on first run)
// 3. Override with environment variables
// 4. Override with command line flags (applied by the caller)
func (l *Loader) Load() (*Config, error) {
	// The storage dir decides where the config file lives, so the env
	// override for it applies before the file is read.
	if dir := os.Getenv("TV_STORAGE_DIR"); dir != "" {
		l.config.Storage.Dir = dir
	}

	if err := l.config.LoadFromFile(l.config.GetConfigFilePath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile merges settings from a TOML config file into the
// configuration. A missing file is created with the current defaults so the
// user has something to edit.
func (c *Config) LoadFromFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return c.writeFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, c)
}

func (c *Config) writeFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(c.Storage.DirPermissions)); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StorageDir      *string
	StorageFilename *string
	StorageKey      *string
	DateFormat      *string
	DateTimeFormat  *string
	Verbose         *bool
}

// applyOverrides applies command line overrides to the configuration
func applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorageDir != nil {
		config.Storage.Dir = *overrides.StorageDir
	}
	if overrides.StorageFilename != nil {
		config.Storage.Filename = *overrides.StorageFilename
	}
	if overrides.StorageKey != nil {
		config.Storage.Key = *overrides.StorageKey
	}
	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.DateTimeFormat != nil {
		config.Display.DateTimeFormat = *overrides.DateTimeFormat
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
