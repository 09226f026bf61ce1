package cli

import (
	"fmt"

	"github.com/alexanderramin/dayline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the schedule profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the schedule profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var wake, sleep, training string
	var meals, trainingAfter int
	var noTraining bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(cmd.Context())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("wake") {
				p.WakeTime = wake
			}
			if flags.Changed("sleep") {
				p.SleepTime = sleep
			}
			if flags.Changed("training") {
				p.TrainingTime = training
			}
			if noTraining {
				p.TrainingTime = ""
			}
			if flags.Changed("meals") {
				p.MealsPerDay = meals
			}
			if flags.Changed("training-after") {
				p.TrainingAfterMeal = trainingAfter
			}

			if err := app.Profile.Update(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&wake, "wake", "", "Wake time (HH:MM)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Sleep time (HH:MM)")
	cmd.Flags().StringVar(&training, "training", "", "Training time (HH:MM)")
	cmd.Flags().BoolVar(&noTraining, "no-training", false, "Clear the training time")
	cmd.Flags().IntVar(&meals, "meals", 0, "Meals per day (1-10)")
	cmd.Flags().IntVar(&trainingAfter, "training-after", 0, "Meal slot training follows (0 for none)")

	return cmd
}

func newRestDayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:       "restday <on|off>",
		Short:     "Mark a date as a rest day, or clear the mark",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var rest bool
			switch args[0] {
			case "on":
				rest = true
			case "off":
			default:
				return fmt.Errorf("restday takes on or off, got %q", args[0])
			}

			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			if err := app.Profile.SetRestDay(cmd.Context(), d, rest); err != nil {
				return err
			}
			state := "training day"
			if rest {
				state = "rest day"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a %s\n", d, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}
