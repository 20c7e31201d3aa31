package cli

import (
	"fmt"
	"strings"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/todolist"
)

// AddCommand handles the add command
type AddCommand struct {
	manager      todolist.Manager
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		manager:      app.manager,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: todo add \"task title\"")
	}
	title := strings.Join(args, " ")

	task, err := c.manager.AddTask(title)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s\n", task.ID, task.Title)
	return nil
}
