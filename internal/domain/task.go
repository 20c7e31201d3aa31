package domain

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task represents a single to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Title       string
	Status      Status
	CreatedAt   time.Time
	CompletedAt *time.Time // Using pointer to represent "not completed yet"
}

// NewTask creates a new pending Task with the given id, title and creation time.
func NewTask(id int64, title string, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Title:     title,
		Status:    StatusPending,
		CreatedAt: createdAt,
	}
}

// IsCompleted returns true if the task has been marked completed.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Complete returns a copy of the task marked completed at the given time.
// Completing an already-completed task returns the task unchanged, so the
// original completion timestamp is never re-stamped.
func (t Task) Complete(completedAt time.Time) Task {
	if t.IsCompleted() {
		return t
	}
	t.Status = StatusCompleted
	t.CompletedAt = &completedAt
	return t
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if t.ID <= 0 {
		return false
	}
	if t.Title == "" {
		return false
	}
	if !t.Status.IsValid() {
		return false
	}
	if t.Status == StatusCompleted && t.CompletedAt == nil {
		return false
	}
	return true
}

// String returns a one-line display form of the task.
func (t Task) String() string {
	marker := " "
	if t.IsCompleted() {
		marker = "x"
	}
	return fmt.Sprintf("[%s] %d: %s", marker, t.ID, t.Title)
}
