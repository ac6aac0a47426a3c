package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgendaCommand(t *testing.T) {
	t.Run("succeeds with tasks", func(t *testing.T) {
		ms := loggedInMockStore()
		require.NoError(t, execute(ms, "add", "Future", "upcoming task", "--due", "2099-01-01"))

		assert.NoError(t, execute(ms, "agenda"))
	})

	t.Run("succeeds with no tasks", func(t *testing.T) {
		ms := loggedInMockStore()

		assert.NoError(t, execute(ms, "agenda"))
	})

	t.Run("fails when nobody is logged in", func(t *testing.T) {
		ms := newMockStore()

		err := execute(ms, "agenda")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No user is logged in")
	})
}
