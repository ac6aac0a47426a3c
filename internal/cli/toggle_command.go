package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newToggleCmd creates the toggle command
func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.store.ToggleTaskStatus(args[0])
			if err != nil {
				return app.errorHandler.Handle("toggle task status", err)
			}

			fmt.Printf("Task %s is now %s\n", task.ID, task.Status)
			return nil
		},
	}
}
