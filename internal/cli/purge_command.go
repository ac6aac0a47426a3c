package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newPurgeCmd creates the purge command
func newPurgeCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all saved data",
		Long:  "Delete the persisted store state: every user and every task. Asks for confirmation unless --force is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("Delete all users and tasks? [y/N]: ")
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Aborted")
					return nil
				}
			}

			if err := app.store.ClearStorage(); err != nil {
				return app.errorHandler.Handle("purge storage", err)
			}

			fmt.Println("All saved data deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
