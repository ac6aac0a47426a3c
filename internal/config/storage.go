package config

import (
	"fmt"
	"os"

	"taskvault/internal/storage/sqlite"
)

// CreateStorage creates a durable storage instance using the configuration
// system, ensuring the storage directory exists.
func CreateStorage(config *Config) (sqlite.Storage, error) {
	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	storage, err := sqlite.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return storage, nil
}

// CreateTestStorage creates an in-memory storage instance for testing
func CreateTestStorage() (sqlite.Storage, error) {
	storage, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test storage: %w", err)
	}

	return storage, nil
}
