package cli

import (
	"fmt"

	"todo-tracker/internal/todolist"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	manager      todolist.Manager
	errorHandler *ErrorHandler
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{
		manager:      app.manager,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clear command
func (c *ClearCommand) Execute(args []string) error {
	if err := c.manager.Clear(); err != nil {
		return c.errorHandler.Handle("clear tasks", err)
	}

	fmt.Println("Cleared all tasks.")
	return nil
}
