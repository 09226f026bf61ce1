package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "dayline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dayline",
		Short:         "Coaching-day timeline and directive tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(cmd.Root().PersistentFlags())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.Shutdown == nil {
				return nil
			}
			return app.Shutdown()
		},
	}

	root.PersistentFlags().String("config", "", "Config file (default searches ~/.dayline and .)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	root.PersistentFlags().String("db", "", "SQLite database path")

	root.AddCommand(
		newTodayCmd(app),
		newItemsCmd(app),
		newDoneCmd(app),
		newUndoCmd(app),
		newToggleCmd(app),
		newDirectiveCmd(app),
		newLogCmd(app),
		newFoodCmd(app),
		newProfileCmd(app),
		newRestDayCmd(app),
	)

	return root
}
