package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskvault/internal/domain"
	"taskvault/internal/errors"
	"taskvault/internal/validation"
)

// newUpdateCmd creates the update command
func newUpdateCmd(app *App) *cobra.Command {
	var (
		title       string
		description string
		due         string
		priority    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of an existing task",
		Long: `Update fields of an existing task. Only the given flags change; the
task's id and creation time are never touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.TaskPatch{}

			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				patch.Priority = &p
			}
			if cmd.Flags().Changed("status") {
				st := domain.Status(status)
				patch.Status = &st
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := app.validator.ParseDueDate(due)
				if err != nil {
					return app.errorHandler.Handle("update task", err)
				}
				patch.DueDate = &dueDate
			}

			if patch.IsEmpty() {
				return app.errorHandler.Handle("update task",
					errors.NewInvalidInputError("flags", "", "nothing to update, pass at least one field flag"))
			}

			if err := app.validator.ValidatePatch(patch); err != nil {
				return app.errorHandler.Handle("update task", err)
			}

			task, err := app.store.UpdateTask(args[0], patch)
			if err != nil {
				return app.errorHandler.Handle("update task", err)
			}

			fmt.Printf("Updated task %s: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date ("+validation.DueDateFormat+")")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority: low, medium or high")
	cmd.Flags().StringVar(&status, "status", "", "New status: pending or completed")

	return cmd
}
