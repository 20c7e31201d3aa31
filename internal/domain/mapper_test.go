package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/store"
)

func TestTaskMapper_ToRecord(t *testing.T) {
	mapper := NewTaskMapper()
	createdAt := time.Date(2025, 3, 1, 9, 30, 0, 123456789, time.UTC)
	completedAt := createdAt.Add(time.Hour)

	t.Run("pending task has null completed_at", func(t *testing.T) {
		task := Task{ID: 1, Title: "Buy milk", Status: StatusPending, CreatedAt: createdAt}

		record := mapper.ToRecord(task)

		assert.Equal(t, int64(1), record.ID)
		assert.Equal(t, "Buy milk", record.Title)
		assert.Equal(t, "pending", record.Status)
		assert.Equal(t, createdAt.Format(time.RFC3339Nano), record.CreatedAt)
		assert.Nil(t, record.CompletedAt)
	})

	t.Run("completed task carries completed_at", func(t *testing.T) {
		task := Task{ID: 2, Title: "Walk dog", Status: StatusCompleted, CreatedAt: createdAt, CompletedAt: &completedAt}

		record := mapper.ToRecord(task)

		assert.Equal(t, "completed", record.Status)
		require.NotNil(t, record.CompletedAt)
		assert.Equal(t, completedAt.Format(time.RFC3339Nano), *record.CompletedAt)
	})
}

func TestTaskMapper_FromRecord(t *testing.T) {
	mapper := NewTaskMapper()

	t.Run("round trip preserves all fields", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 1, 9, 30, 0, 123456789, time.UTC)
		completedAt := createdAt.Add(time.Hour)
		original := Task{ID: 3, Title: "Water plants", Status: StatusCompleted, CreatedAt: createdAt, CompletedAt: &completedAt}

		restored, err := mapper.FromRecord(mapper.ToRecord(original))

		require.NoError(t, err)
		assert.Equal(t, original.ID, restored.ID)
		assert.Equal(t, original.Title, restored.Title)
		assert.Equal(t, original.Status, restored.Status)
		assert.True(t, original.CreatedAt.Equal(restored.CreatedAt))
		require.NotNil(t, restored.CompletedAt)
		assert.True(t, completedAt.Equal(*restored.CompletedAt))
	})

	tests := []struct {
		name   string
		record store.Record
	}{
		{
			name:   "unknown status",
			record: store.Record{ID: 1, Title: "Task", Status: "archived", CreatedAt: "2025-03-01T09:30:00Z"},
		},
		{
			name:   "malformed created_at",
			record: store.Record{ID: 1, Title: "Task", Status: "pending", CreatedAt: "yesterday"},
		},
		{
			name: "malformed completed_at",
			record: store.Record{
				ID: 1, Title: "Task", Status: "completed",
				CreatedAt:   "2025-03-01T09:30:00Z",
				CompletedAt: strPtr("later"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapper.FromRecord(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestTaskMapper_Slices(t *testing.T) {
	mapper := NewTaskMapper()
	createdAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("slice round trip preserves order", func(t *testing.T) {
		tasks := []Task{
			NewTask(1, "A", createdAt),
			NewTask(2, "B", createdAt.Add(time.Minute)),
			NewTask(3, "C", createdAt.Add(2*time.Minute)),
		}

		restored, err := mapper.FromRecordSlice(mapper.ToRecordSlice(tasks))

		require.NoError(t, err)
		require.Len(t, restored, 3)
		for i := range tasks {
			assert.Equal(t, tasks[i].ID, restored[i].ID)
			assert.Equal(t, tasks[i].Title, restored[i].Title)
		}
	})

	t.Run("invalid record reports its index", func(t *testing.T) {
		records := []store.Record{
			{ID: 1, Title: "A", Status: "pending", CreatedAt: "2025-03-01T09:30:00Z"},
			{ID: 2, Title: "B", Status: "bogus", CreatedAt: "2025-03-01T09:31:00Z"},
		}

		_, err := mapper.FromRecordSlice(records)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 1")
	})

	t.Run("empty slice maps to empty slice", func(t *testing.T) {
		assert.Empty(t, mapper.ToRecordSlice(nil))
		restored, err := mapper.FromRecordSlice(nil)
		require.NoError(t, err)
		assert.Empty(t, restored)
	})
}

func strPtr(s string) *string {
	return &s
}
