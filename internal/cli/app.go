package cli

import (
	"fmt"

	"taskvault/internal/config"
	"taskvault/internal/domain"
	"taskvault/internal/store"
	"taskvault/internal/validation"
)

// App wires the store, configuration and validation together for the
// command handlers. The store owns all state; the App is the UI collaborator
// that validates form input before it reaches the store and renders the
// store's derived output.
type App struct {
	store        store.Store
	config       *config.Config
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(st store.Store, cfg *config.Config) *App {
	return &App{
		store:        st,
		config:       cfg,
		validator:    validation.NewTaskValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// renderTask formats one line per task:
// [x] ID  priority  due DATE  Title - Description
// Verbose output appends the creation time in the configured datetime format.
func (a *App) renderTask(t domain.Task) string {
	mark := " "
	if t.Status == domain.StatusCompleted {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %s  %-6s  due %s  %s - %s",
		mark, t.ID, t.Priority, t.DueDate.Format(a.config.Display.DateFormat), t.Title, t.Description)
	if a.config.Application.Verbose {
		line += fmt.Sprintf("  (created %s)", t.CreatedAt.Format(a.config.Display.DateTimeFormat))
	}
	return line
}

func (a *App) printTask(t domain.Task) {
	fmt.Println(a.renderTask(t))
}

// printTasks prints a task list, or a placeholder when it is empty.
func (a *App) printTasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return
	}
	for _, t := range tasks {
		a.printTask(t)
	}
}
