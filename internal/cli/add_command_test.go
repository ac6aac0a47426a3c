package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskvault/internal/domain"
)

func TestAddCommand(t *testing.T) {
	t.Run("adds a task with defaults", func(t *testing.T) {
		ms := loggedInMockStore()

		err := execute(ms, "add", "Write report", "quarterly numbers", "--due", "2099-01-01")
		require.NoError(t, err)

		tasks, err := ms.Tasks(domain.SortNone)
		require.NoError(t, err)
		require.Len(t, tasks, 1)

		task := tasks[0]
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, "quarterly numbers", task.Description)
		assert.Equal(t, domain.StatusPending, task.Status)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), task.DueDate)
	})

	t.Run("honors priority and status flags", func(t *testing.T) {
		ms := loggedInMockStore()

		err := execute(ms, "add", "Done deal", "already handled", "--due", "2099-01-01",
			"--priority", "high", "--status", "completed")
		require.NoError(t, err)

		tasks, err := ms.Tasks(domain.SortNone)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
		assert.Equal(t, domain.StatusCompleted, tasks[0].Status)
	})

	t.Run("rejects a malformed due date", func(t *testing.T) {
		ms := loggedInMockStore()

		err := execute(ms, "add", "Title", "description", "--due", "01/01/2099")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")

		tasks, _ := ms.Tasks(domain.SortNone)
		assert.Empty(t, tasks)
	})

	t.Run("rejects a past due date", func(t *testing.T) {
		ms := loggedInMockStore()

		err := execute(ms, "add", "Title", "description", "--due", "2001-01-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be in the past")
	})

	t.Run("rejects a short description", func(t *testing.T) {
		ms := loggedInMockStore()

		err := execute(ms, "add", "Title", "x", "--due", "2099-01-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 2 characters")
	})

	t.Run("rejects an unknown priority", func(t *testing.T) {
		ms := loggedInMockStore()

		err := execute(ms, "add", "Title", "description", "--due", "2099-01-01", "--priority", "urgent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority")
	})

	t.Run("fails when nobody is logged in", func(t *testing.T) {
		ms := newMockStore()

		err := execute(ms, "add", "Title", "description", "--due", "2099-01-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No user is logged in")
	})

	t.Run("requires the due flag", func(t *testing.T) {
		ms := loggedInMockStore()

		assert.Error(t, execute(ms, "add", "Title", "description"))
	})
}
