package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command
func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.store.DeleteTask(args[0]); err != nil {
				return app.errorHandler.Handle("delete task", err)
			}

			fmt.Printf("Deleted task %s\n", args[0])
			return nil
		},
	}
}
