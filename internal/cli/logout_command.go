package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLogoutCmd creates the logout command
func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current user",
		Long:  "Clear the current user. Registered users and their tasks are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := app.store.CurrentUser()
			if !ok {
				fmt.Println("No user is logged in")
				return nil
			}

			if err := app.store.Logout(); err != nil {
				return app.errorHandler.Handle("log out", err)
			}

			fmt.Printf("Logged out: %s\n", name)
			return nil
		},
	}
}
