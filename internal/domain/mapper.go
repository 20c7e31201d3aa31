package domain

import (
	"fmt"
	"time"

	"todo-tracker/internal/store"
)

// timeLayout is the wire format for timestamps. RFC 3339 with nanoseconds so
// snapshots round-trip without losing precision.
const timeLayout = time.RFC3339Nano

// TaskMapper handles conversion between domain Tasks and store Records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a store Record.
func (m *TaskMapper) ToRecord(task Task) store.Record {
	record := store.Record{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.Format(timeLayout),
	}
	if task.CompletedAt != nil {
		completedAt := task.CompletedAt.Format(timeLayout)
		record.CompletedAt = &completedAt
	}
	return record
}

// FromRecord converts a store Record back to a domain Task.
func (m *TaskMapper) FromRecord(record store.Record) (Task, error) {
	status := Status(record.Status)
	if !status.IsValid() {
		return Task{}, fmt.Errorf("unknown task status %q", record.Status)
	}

	createdAt, err := time.Parse(timeLayout, record.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("parse created_at: %w", err)
	}

	task := Task{
		ID:        record.ID,
		Title:     record.Title,
		Status:    status,
		CreatedAt: createdAt,
	}

	if record.CompletedAt != nil {
		completedAt, err := time.Parse(timeLayout, *record.CompletedAt)
		if err != nil {
			return Task{}, fmt.Errorf("parse completed_at: %w", err)
		}
		task.CompletedAt = &completedAt
	}

	return task, nil
}

// ToRecordSlice converts a slice of domain Tasks to store Records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []store.Record {
	records := make([]store.Record, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of store Records to domain Tasks,
// preserving order. Conversion stops at the first invalid record.
func (m *TaskMapper) FromRecordSlice(records []store.Record) ([]Task, error) {
	tasks := make([]Task, len(records))
	for i, record := range records {
		task, err := m.FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tasks[i] = task
	}
	return tasks, nil
}
