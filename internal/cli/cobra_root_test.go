package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
)

func TestNewRootCommand(t *testing.T) {
	_, mock := setupTestAppWithMockManager(t)
	root := NewRootCommand(mock, config.NewConfig())

	require.NotNil(t, root)
	require.NotNil(t, root.cmd)
	assert.Equal(t, "todo", root.cmd.Use)

	var names []string
	for _, sub := range root.cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "complete")
	assert.Contains(t, names, "update")
	assert.Contains(t, names, "clear")
}

func TestRootCommand_Execute(t *testing.T) {
	t.Run("add then complete through cobra", func(t *testing.T) {
		_, mock := setupTestAppWithMockManager(t)
		root := NewRootCommand(mock, config.NewConfig())

		root.cmd.SetArgs([]string{"add", "Buy", "milk"})
		require.NoError(t, root.Execute())

		root.cmd.SetArgs([]string{"complete", "1"})
		require.NoError(t, root.Execute())

		tasks := mock.ListTasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy milk", tasks[0].Title)
		assert.True(t, tasks[0].IsCompleted())
	})

	t.Run("argument arity is enforced", func(t *testing.T) {
		_, mock := setupTestAppWithMockManager(t)
		root := NewRootCommand(mock, config.NewConfig())

		root.cmd.SetArgs([]string{"add"})
		assert.Error(t, root.Execute())

		root.cmd.SetArgs([]string{"update", "1"})
		assert.Error(t, root.Execute())

		root.cmd.SetArgs([]string{"clear", "extra"})
		assert.Error(t, root.Execute())
	})

	t.Run("unknown subcommand fails", func(t *testing.T) {
		_, mock := setupTestAppWithMockManager(t)
		root := NewRootCommand(mock, config.NewConfig())

		root.cmd.SetArgs([]string{"frobnicate"})
		assert.Error(t, root.Execute())
	})
}
