// Package todolist holds the core task list manager: id assignment,
// status transitions, and the snapshot-per-mutation persistence protocol.
package todolist

import (
	"strconv"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/store"
	"todo-tracker/internal/validation"
)

// Manager defines the task list operations the CLI layer depends on.
// The concrete implementation is TodoList; the interface allows mocks
// in command handler tests.
type Manager interface {
	AddTask(title string) (*domain.Task, error)
	ListTasks() []domain.Task
	MarkCompleted(id int64) (*domain.Task, error)
	UpdateTask(id int64, title string) (*domain.Task, error)
	Clear() error
	Len() int
}

// TodoList owns the ordered in-memory task collection and mirrors every
// mutation to the configured snapshot store. A nil store means the list is
// purely in-memory and never persists.
type TodoList struct {
	store     store.Store
	clock     domain.Clock
	mapper    *domain.TaskMapper
	validator *validation.TaskValidator
	tasks     []domain.Task
	nextID    int64
}

// New creates a TodoList backed by the given store, loading any existing
// snapshot. Pass a nil store for an ephemeral in-memory list.
func New(st store.Store) (*TodoList, error) {
	return NewWithClock(st, domain.SystemClock)
}

// NewWithClock creates a TodoList with an injected clock for deterministic
// timestamps under test.
func NewWithClock(st store.Store, clock domain.Clock) (*TodoList, error) {
	return NewWithValidator(st, clock, validation.NewTaskValidator())
}

// NewWithValidator creates a TodoList with an injected clock and task
// validator. This is the full constructor; the other constructors delegate
// to it with defaults.
func NewWithValidator(st store.Store, clock domain.Clock, validator *validation.TaskValidator) (*TodoList, error) {
	list := &TodoList{
		store:     st,
		clock:     clock,
		mapper:    domain.NewTaskMapper(),
		validator: validator,
		tasks:     []domain.Task{},
		nextID:    1,
	}
	if err := list.load(); err != nil {
		return nil, err
	}
	return list, nil
}

// load reconstructs the task list from the snapshot store and recomputes the
// id counter as one more than the highest loaded id.
func (l *TodoList) load() error {
	if l.store == nil {
		return nil
	}

	records, err := l.store.Load()
	if err != nil {
		return errors.NewStorageError("load snapshot", err)
	}

	tasks, err := l.mapper.FromRecordSlice(records)
	if err != nil {
		return errors.NewStorageError("decode snapshot", err)
	}

	l.tasks = tasks
	l.nextID = 1
	for _, task := range tasks {
		if task.ID >= l.nextID {
			l.nextID = task.ID + 1
		}
	}
	return nil
}

// persist writes the full current collection to the store. No-op without a
// configured store.
func (l *TodoList) persist() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(l.mapper.ToRecordSlice(l.tasks)); err != nil {
		return errors.NewStorageError("save snapshot", err)
	}
	return nil
}

// AddTask validates the title, creates a pending task with the next id and
// the current timestamp, appends it and persists. The id counter only
// advances once the snapshot write has succeeded.
func (l *TodoList) AddTask(title string) (*domain.Task, error) {
	cleanedTitle, err := l.validator.GetValidTitle(title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}

	task := domain.NewTask(l.nextID, cleanedTitle, l.clock())
	l.tasks = append(l.tasks, task)
	if err := l.persist(); err != nil {
		l.tasks = l.tasks[:len(l.tasks)-1]
		return nil, err
	}
	l.nextID++
	return &task, nil
}

// ListTasks returns a snapshot copy of all tasks in insertion order. Mutating
// the returned slice does not affect the list.
func (l *TodoList) ListTasks() []domain.Task {
	tasks := make([]domain.Task, len(l.tasks))
	for i, task := range l.tasks {
		tasks[i] = cloneTask(task)
	}
	return tasks
}

// MarkCompleted transitions the task with the given id to completed and
// persists. Completing an already-completed task is a no-op: the original
// completion timestamp is kept and nothing is written.
func (l *TodoList) MarkCompleted(id int64) (*domain.Task, error) {
	idx, err := l.findTaskByID(id)
	if err != nil {
		return nil, err
	}

	if l.tasks[idx].IsCompleted() {
		task := cloneTask(l.tasks[idx])
		return &task, nil
	}

	previous := l.tasks[idx]
	l.tasks[idx] = l.tasks[idx].Complete(l.clock())
	if err := l.persist(); err != nil {
		l.tasks[idx] = previous
		return nil, err
	}

	task := cloneTask(l.tasks[idx])
	return &task, nil
}

// UpdateTask replaces the title of the task with the given id and persists.
// The title is validated before the lookup, so an empty title on an unknown
// id reports the validation error.
func (l *TodoList) UpdateTask(id int64, title string) (*domain.Task, error) {
	cleanedTitle, err := l.validator.GetValidTitle(title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}

	idx, err := l.findTaskByID(id)
	if err != nil {
		return nil, err
	}

	previous := l.tasks[idx]
	l.tasks[idx].Title = cleanedTitle
	if err := l.persist(); err != nil {
		l.tasks[idx] = previous
		return nil, err
	}

	task := cloneTask(l.tasks[idx])
	return &task, nil
}

// Clear removes all tasks and persists the empty collection. The id counter
// is NOT reset: the next AddTask continues from its prior value.
func (l *TodoList) Clear() error {
	previous := l.tasks
	l.tasks = []domain.Task{}
	if err := l.persist(); err != nil {
		l.tasks = previous
		return err
	}
	return nil
}

// Len returns the number of tasks in the list.
func (l *TodoList) Len() int {
	return len(l.tasks)
}

// findTaskByID returns the index of the task with the given id.
func (l *TodoList) findTaskByID(id int64) (int, error) {
	for i, task := range l.tasks {
		if task.ID == id {
			return i, nil
		}
	}
	return 0, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
}

// cloneTask copies a task including its completion timestamp, so callers
// cannot reach back into the list through the pointer.
func cloneTask(task domain.Task) domain.Task {
	if task.CompletedAt != nil {
		completedAt := *task.CompletedAt
		task.CompletedAt = &completedAt
	}
	return task
}
