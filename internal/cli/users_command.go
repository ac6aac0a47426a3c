package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newUsersCmd creates the users command
func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered user names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := app.store.UserNames()
			if len(names) == 0 {
				fmt.Println("No users registered")
				return nil
			}

			current, _ := app.store.CurrentUser()
			for _, name := range names {
				if name == current {
					fmt.Printf("* %s\n", name)
				} else {
					fmt.Printf("  %s\n", name)
				}
			}
			return nil
		},
	}
}
