package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskvault/internal/domain"
)

// newAgendaCmd creates the agenda command
func newAgendaCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "agenda",
		Short: "Show tasks bucketed by due date",
		Long: `Show the current user's tasks in three buckets relative to today's
date: overdue, due today, and upcoming. A task due today appears only in the
today bucket.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grouped, err := app.store.TasksByTime()
			if err != nil {
				return app.errorHandler.Handle("show agenda", err)
			}

			fmt.Printf("Agenda for %s\n", formattedDate(time.Now()))

			printBucket := func(header string, tasks []domain.Task) {
				fmt.Printf("%s (%d)\n", header, len(tasks))
				for _, t := range tasks {
					app.printTask(t)
				}
			}

			printBucket("Overdue", grouped.Overdue)
			printBucket("Today", grouped.Today)
			printBucket("Upcoming", grouped.Upcoming)
			return nil
		},
	}
}
