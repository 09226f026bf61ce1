package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dayline/internal/cli/formatter"
	"github.com/alexanderramin/dayline/internal/service"
	"github.com/spf13/cobra"
)

type completionFunc func(ctx context.Context, date string, index int) (*service.CompletionResult, error)

// newTransitionCmd builds done/undo/toggle, which differ only in the
// service call.
func newTransitionCmd(app *App, use, short string, run func() completionFunc) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   use + " <index>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			res, err := run()(cmd.Context(), d, index)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCompletion(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	var all bool

	cmd := newTransitionCmd(app, "done", "Complete an action item", func() completionFunc {
		return app.Completion.Execute
	})
	cmd.Args = cobra.MaximumNArgs(1)

	inner := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !all {
			if len(args) != 1 {
				return fmt.Errorf("done needs an item index or --all")
			}
			return inner(cmd, args)
		}
		if len(args) > 0 {
			return fmt.Errorf("--all does not take an index")
		}
		date, _ := cmd.Flags().GetString("date")
		d, err := resolveDate(app, date)
		if err != nil {
			return err
		}
		res, err := app.Completion.CompleteAll(cmd.Context(), d)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBatch(res))
		return nil
	}

	cmd.Flags().BoolVar(&all, "all", false, "Complete every executable item")

	return cmd
}

func newUndoCmd(app *App) *cobra.Command {
	return newTransitionCmd(app, "undo", "Undo a completed action item", func() completionFunc {
		return app.Completion.Undo
	})
}

func newToggleCmd(app *App) *cobra.Command {
	return newTransitionCmd(app, "toggle", "Complete or undo an action item", func() completionFunc {
		return app.Completion.Toggle
	})
}
