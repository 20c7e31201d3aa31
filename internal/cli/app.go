package cli

import (
	"strconv"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/todolist"
)

// App represents the main CLI application
type App struct {
	manager todolist.Manager
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(manager todolist.Manager) *App {
	return &App{
		manager: manager,
	}
}

// parseTaskID parses a task id argument into a positive integer.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "must be a positive integer")
	}
	return id, nil
}
