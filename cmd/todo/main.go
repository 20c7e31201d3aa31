package main

import (
	"fmt"
	"os"

	"todo-tracker/internal/cli"
	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/todolist"
	"todo-tracker/internal/validation"
)

func main() {
	// Load configuration: defaults, then config file, then environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create snapshot store with dependency injection based on environment
	factory := NewStoreFactory(GetEnvironment(), cfg)
	st, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating store: %v\n", err)
		os.Exit(1)
	}

	if cfg.Application.Verbose {
		fmt.Fprintf(os.Stderr, "todo: snapshot location %s\n", cfg.GetSnapshotPath())
	}
	logging.Debugf("todo: environment=%s\n", GetEnvironment())

	// Build the task list manager, loading any existing snapshot
	validator := validation.NewTaskValidatorWithLimits(
		cfg.Validation.TitleMinLength,
		cfg.Validation.TitleMaxLength,
	)
	manager, err := todolist.NewWithValidator(st, domain.SystemClock, validator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading task list: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(manager, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
