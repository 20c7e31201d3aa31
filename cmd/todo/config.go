package main

import (
	"fmt"
	"os"

	"todo-tracker/internal/config"
	"todo-tracker/internal/store"
	"todo-tracker/internal/store/jsonfile"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from TODO_ENV
func GetEnvironment() Environment {
	switch os.Getenv("TODO_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}

// StoreFactory creates snapshot store instances based on environment
type StoreFactory struct {
	env Environment
	cfg *config.Config
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment, cfg *config.Config) *StoreFactory {
	return &StoreFactory{env: env, cfg: cfg}
}

// CreateStore creates a store instance based on the current environment.
// The testing environment returns a nil store: the list stays in-memory and
// never touches disk.
func (sf *StoreFactory) CreateStore() (store.Store, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStore()
	case Testing:
		return nil, nil
	default:
		return sf.createProductionStore()
	}
}

// createDevelopmentStore uses a snapshot file in the current directory
func (sf *StoreFactory) createDevelopmentStore() (store.Store, error) {
	st, err := jsonfile.New("todo.json")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development store: %w", err)
	}
	return st, nil
}

// createProductionStore uses the configured snapshot location
func (sf *StoreFactory) createProductionStore() (store.Store, error) {
	st, err := config.CreateStore(sf.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production store: %w", err)
	}
	return st, nil
}
