package cli

import (
	"fmt"

	"github.com/alexanderramin/dayline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var date, now string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the day's timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			minute, err := resolveMinute(app, now)
			if err != nil {
				return err
			}

			view, err := app.Timeline.Day(cmd.Context(), d, minute)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(view))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&now, "now", "", "Reference time for the current marker (HH:MM)")

	return cmd
}

func newItemsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List the directive's action items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			directive, items, err := app.Directives.Get(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(items, directive.Completed))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}
