package cli

import (
	"github.com/spf13/cobra"

	"taskvault/internal/domain"
	"taskvault/internal/errors"
)

// newListCmd creates the list command
func newListCmd(app *App) *cobra.Command {
	var (
		sortBy    string
		filterKey string
		search    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the current user's tasks",
		Long: `List the current user's tasks in insertion order. With --filter or
--search the derived view is shown instead: the category filter is applied
first, then the case-insensitive text search over title and description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Derived view when filter or search criteria are given.
			if cmd.Flags().Changed("filter") || cmd.Flags().Changed("search") {
				key := domain.FilterKey(filterKey)
				if !key.IsValid() {
					return app.errorHandler.Handle("list tasks",
						errors.NewInvalidInputError("filter", filterKey, "unknown filter key"))
				}

				// The view is only meaningful with a current user; surface
				// the same unauthorized error a plain listing would.
				if _, err := app.store.Tasks(domain.SortNone); err != nil {
					return app.errorHandler.Handle("list tasks", err)
				}

				app.store.SetFilterKey(key)
				app.store.SetSearchQuery(search)
				app.printTasks(app.store.FilteredTasks())
				return nil
			}

			by := domain.SortBy(sortBy)
			if !by.IsValid() {
				return app.errorHandler.Handle("list tasks",
					errors.NewInvalidInputError("sort", sortBy, "must be priority or dueDate"))
			}

			tasks, err := app.store.Tasks(by)
			if err != nil {
				return app.errorHandler.Handle("list tasks", err)
			}

			app.printTasks(tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: priority or dueDate")
	cmd.Flags().StringVar(&filterKey, "filter", string(domain.FilterAll),
		"Category filter: all, completed, pending, low, medium, high, overdue or upcoming")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search over title and description")

	return cmd
}
