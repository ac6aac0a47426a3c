package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRegisterCmd creates the register command
func newRegisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register NAME",
		Short: "Register a display name",
		Long:  "Register a display name with an empty task list. Registering an existing name changes nothing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := app.validator.ValidateUserName(name); err != nil {
				return app.errorHandler.Handle("register user", err)
			}

			if err := app.store.RegisterUser(name); err != nil {
				return app.errorHandler.Handle("register user", err)
			}

			fmt.Printf("Registered user: %s\n", name)
			return nil
		},
	}
}
