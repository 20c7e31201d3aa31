package cli

import (
	"strconv"
	"testing"
	"time"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/todolist"
	"todo-tracker/internal/validation"
)

// mockManager implements the todolist.Manager interface for testing
type mockManager struct {
	tasks     []domain.Task
	nextID    int64
	validator *validation.TaskValidator

	// failWith, when set, is returned by every mutating operation to
	// exercise the error paths of the command handlers.
	failWith error
}

// newMockManager creates a new mock Manager instance
func newMockManager() *mockManager {
	return &mockManager{
		tasks:     []domain.Task{},
		nextID:    1,
		validator: validation.NewTaskValidator(),
	}
}

func (m *mockManager) AddTask(title string) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	cleaned, err := m.validator.GetValidTitle(title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}

	task := domain.NewTask(m.nextID, cleaned, time.Now())
	m.tasks = append(m.tasks, task)
	m.nextID++
	return &task, nil
}

func (m *mockManager) ListTasks() []domain.Task {
	tasks := make([]domain.Task, len(m.tasks))
	copy(tasks, m.tasks)
	return tasks
}

func (m *mockManager) MarkCompleted(id int64) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	idx, err := m.findByID(id)
	if err != nil {
		return nil, err
	}

	m.tasks[idx] = m.tasks[idx].Complete(time.Now())
	task := m.tasks[idx]
	return &task, nil
}

func (m *mockManager) UpdateTask(id int64, title string) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	cleaned, err := m.validator.GetValidTitle(title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}

	idx, err := m.findByID(id)
	if err != nil {
		return nil, err
	}

	m.tasks[idx].Title = cleaned
	task := m.tasks[idx]
	return &task, nil
}

func (m *mockManager) Clear() error {
	if m.failWith != nil {
		return m.failWith
	}
	m.tasks = []domain.Task{}
	return nil
}

func (m *mockManager) Len() int {
	return len(m.tasks)
}

func (m *mockManager) findByID(id int64) (int, error) {
	for i, task := range m.tasks {
		if task.ID == id {
			return i, nil
		}
	}
	return 0, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
}

var _ todolist.Manager = (*mockManager)(nil)

// setupTestAppWithMockManager creates a test app backed by a mock Manager
func setupTestAppWithMockManager(t *testing.T) (*App, *mockManager) {
	mock := newMockManager()
	app := NewApp(mock)
	return app, mock
}
