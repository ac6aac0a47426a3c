package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLoginCmd creates the login command
func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login NAME",
		Short: "Make a registered user the current user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := app.validator.ValidateUserName(name); err != nil {
				return app.errorHandler.Handle("log in", err)
			}

			if err := app.store.SetCurrentUser(name); err != nil {
				return app.errorHandler.Handle("log in", err)
			}

			fmt.Printf("Logged in as: %s\n", name)
			return nil
		},
	}
}
