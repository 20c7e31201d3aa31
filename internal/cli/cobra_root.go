package cli

import (
	"github.com/spf13/cobra"

	"todo-tracker/internal/config"
	"todo-tracker/internal/todolist"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	manager todolist.Manager
	config  *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(manager todolist.Manager, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		manager: manager,
		config:  cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line to-do list manager",
		Long: `Todo is a command-line application for managing a personal task list.

FEATURES:
  • Add tasks and list them in the order they were created
  • Mark tasks completed and update their titles
  • Clear the whole list while keeping ids unique forever
  • State persists to a single JSON snapshot after every change

EXAMPLES:
  todo add "Buy milk"                      # Add a new task
  todo list                                # Show all tasks
  todo complete 1                          # Mark task 1 as completed
  todo update 1 "Buy oat milk"             # Change the title of task 1
  todo clear                               # Remove every task

CONFIGURATION:
  Configuration follows this priority order: environment variables > config file > defaults
  The optional config file lives at ~/.todo/config.toml (override with TODO_CONFIG).

    TODO_STORE_DIR                         Snapshot directory (default: ~/.todo)
    TODO_STORE_FILENAME                    Snapshot filename (default: todo.json)
    TODO_VALIDATION_TITLE_MIN              Min title length (default: 1)
    TODO_VALIDATION_TITLE_MAX              Max title length (default: 255)
    TODO_APP_VERBOSE                       Verbose output (default: false)
    TODO_ENV                               production, development or testing

GETTING HELP:
  todo [command] --help                    # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	app := NewApp(r.manager)

	addCmd := &cobra.Command{
		Use:   "add [task title]",
		Short: "Add a new task",
		Long:  "Add a new pending task with the given title. Multiple words are joined into one title.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewAddCommand(app).Execute(args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List every task in insertion order, with completed tasks marked [x].",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(app).Execute(args)
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Long:  "Mark the task with the given id as completed and stamp its completion time.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCompleteCommand(app).Execute(args)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> [new title]",
		Short: "Update a task title",
		Long:  "Replace the title of the task with the given id.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewUpdateCommand(app).Execute(args)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all tasks",
		Long:  "Remove every task from the list. Task ids are not reused afterwards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewClearCommand(app).Execute(args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		completeCmd,
		updateCmd,
		clearCmd,
	)
}
