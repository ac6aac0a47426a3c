package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newClearCmd creates the clear command
func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all of the current user's tasks",
		Long:  "Remove all of the current user's tasks. Does nothing when no user is logged in.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := app.store.CurrentUser()
			if !ok {
				fmt.Println("No user is logged in, nothing to clear")
				return nil
			}

			if err := app.store.ClearAllTasks(); err != nil {
				return app.errorHandler.Handle("clear tasks", err)
			}

			fmt.Printf("Cleared all tasks for %s\n", name)
			return nil
		},
	}
}
