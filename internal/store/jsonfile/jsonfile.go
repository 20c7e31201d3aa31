// Package jsonfile implements the snapshot store on a single JSON file.
// Human-readable, portable, and exclusively owned by one process at a time.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"todo-tracker/internal/store"
)

// Store persists the task collection to a JSON file on disk.
type Store struct {
	path string
}

// New creates a jsonfile store writing to the given path. The parent
// directory must exist; the file itself is created on first Save.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path cannot be empty")
	}
	return &Store{path: path}, nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole snapshot file. A missing file is not an error and
// yields an empty record set.
func (s *Store) Load() ([]store.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []store.Record{}, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var records []store.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return records, nil
}

// Save writes the full record set as one indented JSON document. The write
// goes to a temp file in the same directory which is then renamed over the
// destination, so readers never observe a torn snapshot.
func (s *Store) Save(records []store.Record) error {
	if records == nil {
		records = []store.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".todo-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
