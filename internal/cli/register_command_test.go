package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCommand(t *testing.T) {
	t.Run("registers a new user", func(t *testing.T) {
		ms := newMockStore()

		err := execute(ms, "register", "ada")
		require.NoError(t, err)

		assert.Equal(t, []string{"ada"}, ms.UserNames())
		_, loggedIn := ms.CurrentUser()
		assert.False(t, loggedIn, "registration must not log the user in")
	})

	t.Run("registering an existing name changes nothing", func(t *testing.T) {
		ms := loggedInMockStore()

		err := execute(ms, "register", "ada")
		require.NoError(t, err)

		assert.Equal(t, []string{"ada"}, ms.UserNames())
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		ms := newMockStore()

		err := execute(ms, "register", "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
		assert.Empty(t, ms.UserNames())
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		ms := newMockStore()

		assert.Error(t, execute(ms, "register"))
		assert.Error(t, execute(ms, "register", "ada", "bob"))
	})
}
