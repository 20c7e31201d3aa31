// Package store defines the snapshot persistence contract for the task list.
// The concrete implementation is the jsonfile store, but the interface allows
// alternative backends (in-memory, fakes) for testing.
package store

// Record is the serialized form of a task as it appears in a snapshot.
// Timestamps are RFC 3339 strings; a nil CompletedAt marshals to JSON null.
type Record struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at"`
}

// Store persists the full task collection as a single document.
type Store interface {
	// Load reads the whole snapshot. A missing snapshot yields an empty
	// slice and no error.
	Load() ([]Record, error)

	// Save atomically replaces the snapshot with the given records. A
	// concurrent reader never observes a partially written snapshot.
	Save(records []Record) error
}
