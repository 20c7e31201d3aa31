package cli

import (
	"fmt"
	"strings"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/todolist"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	manager      todolist.Manager
	errorHandler *ErrorHandler
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{
		manager:      app.manager,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the update command
func (c *UpdateCommand) Execute(args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "update", "usage: todo update <id> \"new title\"")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	title := strings.Join(args[1:], " ")

	task, err := c.manager.UpdateTask(id, title)
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	fmt.Printf("Updated task %d: %s\n", task.ID, task.Title)
	return nil
}
