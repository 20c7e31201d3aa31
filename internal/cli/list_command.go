package cli

import (
	"fmt"

	"todo-tracker/internal/todolist"
)

// ListCommand handles the list command
type ListCommand struct {
	manager todolist.Manager
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{manager: app.manager}
}

// Execute runs the list command
func (c *ListCommand) Execute(args []string) error {
	tasks := c.manager.ListTasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Println("Tasks:")
	for _, task := range tasks {
		fmt.Printf("- %s\n", task.String())
	}
	return nil
}
