package cli

import (
	"fmt"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/todolist"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	manager      todolist.Manager
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		manager:      app.manager,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "complete", "usage: todo complete <id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := c.manager.MarkCompleted(id)
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	fmt.Printf("Completed task %d: %s\n", task.ID, task.Title)
	return nil
}
