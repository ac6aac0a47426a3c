package cli

import (
	"github.com/spf13/cobra"

	"taskvault/internal/config"
	"taskvault/internal/store"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(st store.Store, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app: NewApp(st, cfg),
	}

	root.cmd = &cobra.Command{
		Use:   "tv",
		Short: "A local task manager with per-user task lists",
		Long: `taskvault (tv) keeps per-user task lists on this device. Register a
display name, log in, then add, edit, complete, filter and search tasks.
Everything is stored locally; there is no server and no network.

EXAMPLES:
  tv register "Ada"                        # Register a display name
  tv login "Ada"                           # Make Ada the current user
  tv add "Write spec" "draft v1" --due 2099-01-01 --priority high
  tv list                                  # List the current user's tasks
  tv list --sort priority                  # High priority first
  tv list --filter pending --search spec   # Derived (filtered) view
  tv agenda                                # Today / overdue / upcoming buckets
  tv toggle <id>                           # Flip pending/completed
  tv clear                                 # Remove the current user's tasks
  tv purge                                 # Delete all saved data

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

    TV_STORAGE_DIR                         Storage directory (default: ~/.tv)
    TV_STORAGE_FILENAME                    Database filename (default: tv.db)
    TV_STORAGE_KEY                         Persistence key (default: user-task-store)
    TV_DISPLAY_DATE_FORMAT                 Date format (default: 2006-01-02)
    TV_DISPLAY_DATETIME_FORMAT             Datetime format (default: 2006-01-02 15:04)
    TV_APP_VERBOSE                         Verbose output (default: false)

  A config.toml in the storage directory is written on first run and can be
  edited in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlagOverrides()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs sets the command line arguments, used by tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("date-format", "", "Date display format (overrides TV_DISPLAY_DATE_FORMAT)")
	flags.String("datetime-format", "", "Datetime display format (overrides TV_DISPLAY_DATETIME_FORMAT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TV_APP_VERBOSE)")
}

// applyFlagOverrides applies changed global flags to the configuration
func (r *RootCommand) applyFlagOverrides() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		r.app.config.Display.DateFormat = v
	}
	if flags.Changed("datetime-format") {
		v, _ := flags.GetString("datetime-format")
		r.app.config.Display.DateTimeFormat = v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		r.app.config.Application.Verbose = v
	}

	return r.app.config.Validate()
}

// addSubcommands registers all subcommands
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		newRegisterCmd(r.app),
		newLoginCmd(r.app),
		newLogoutCmd(r.app),
		newUsersCmd(r.app),
		newAddCmd(r.app),
		newListCmd(r.app),
		newUpdateCmd(r.app),
		newToggleCmd(r.app),
		newDeleteCmd(r.app),
		newAgendaCmd(r.app),
		newClearCmd(r.app),
		newPurgeCmd(r.app),
	)
}
