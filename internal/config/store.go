package config

import (
	"fmt"
	"io/fs"
	"os"

	"todo-tracker/internal/store"
	"todo-tracker/internal/store/jsonfile"
)

// CreateStore creates a snapshot store instance using the configuration
// system, creating the store directory if it does not exist yet.
func CreateStore(config *Config) (store.Store, error) {
	if err := os.MkdirAll(config.Storage.Dir, fs.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	st, err := jsonfile.New(config.GetSnapshotPath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	return st, nil
}
