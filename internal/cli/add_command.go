package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskvault/internal/domain"
	"taskvault/internal/validation"
)

// newAddCmd creates the add command
func newAddCmd(app *App) *cobra.Command {
	var (
		due      string
		priority string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "add TITLE DESCRIPTION",
		Short: "Add a task for the current user",
		Long: `Add a task for the current user. The title must be non-empty, the
description at least two characters, and the due date today or later in ` + validation.DueDateFormat + ` format.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := app.validator.ParseDueDate(due)
			if err != nil {
				return app.errorHandler.Handle("add task", err)
			}

			input := domain.TaskInput{
				Title:       args[0],
				Description: args[1],
				Status:      domain.Status(status),
				Priority:    domain.Priority(priority),
				DueDate:     dueDate,
			}

			if err := app.validator.ValidateInput(input); err != nil {
				return app.errorHandler.Handle("add task", err)
			}

			task, err := app.store.AddTask(input)
			if err != nil {
				return app.errorHandler.Handle("add task", err)
			}

			fmt.Printf("Added task %s: %s (due %s)\n",
				task.ID, task.Title, task.DueDate.Format(app.config.Display.DateFormat))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date ("+validation.DueDateFormat+")")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority: low, medium or high")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusPending), "Status: pending or completed")
	cmd.MarkFlagRequired("due")

	return cmd
}
