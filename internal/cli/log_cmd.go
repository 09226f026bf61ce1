package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayline/internal/cli/formatter"
	"github.com/alexanderramin/dayline/internal/directive"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/service"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log meals and workouts outside the directive",
	}

	cmd.AddCommand(
		newLogMealCmd(app),
		newLogWorkoutCmd(app),
		newLogListCmd(app),
		newLogEditCmd(app),
		newLogDeleteCmd(app),
	)

	return cmd
}

func newLogMealCmd(app *App) *cobra.Command {
	var date, at, name string

	cmd := &cobra.Command{
		Use:   "meal <foods...>",
		Short: "Log a meal, e.g. log meal 白米150g 鶏むね肉200g",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			minute, err := resolveMinute(app, at)
			if err != nil {
				return err
			}

			foods := directive.ExtractFoods(strings.Join(args, "、"))
			if len(foods) == 0 {
				return fmt.Errorf("no foods with amounts found in %q (write them like 白米150g)", strings.Join(args, " "))
			}

			m, err := app.Activity.LogMeal(cmd.Context(), service.MealInput{
				Date:   d,
				Minute: minute,
				Name:   name,
				Foods:  foods,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMeal(m))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&at, "at", "", "Time eaten (HH:MM, default now)")
	cmd.Flags().StringVar(&name, "name", "", "Meal name (default first food)")

	return cmd
}

func newLogWorkoutCmd(app *App) *cobra.Command {
	var date, at string
	var minutes, kcal int

	cmd := &cobra.Command{
		Use:   "workout <name>",
		Short: "Log a workout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			minute, err := resolveMinute(app, at)
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			w := &domain.WorkoutRecord{
				Date:           d,
				Minute:         minute,
				Name:           name,
				DurationMin:    minutes,
				CaloriesBurned: kcal,
			}
			if err := app.Activity.LogWorkout(cmd.Context(), w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s, %dkcal)\n",
				formatter.StyleGreen.Render("Logged workout"),
				formatter.Bold(w.Name),
				formatter.TruncID(w.ID),
				formatter.FormatMinutes(w.DurationMin),
				w.CaloriesBurned,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, default now)")
	cmd.Flags().IntVar(&minutes, "min", 30, "Duration in minutes")
	cmd.Flags().IntVar(&kcal, "kcal", 0, "Calories burned")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the day's meals and workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			meals, workouts, err := app.Activity.ListDay(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDayLog(d, meals, workouts))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

func newLogEditCmd(app *App) *cobra.Command {
	var date, at, name string
	var minutes, kcal int

	cmd := &cobra.Command{
		Use:   "edit <id> [foods...]",
		Short: "Change a meal or workout; foods replace a meal's items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			ref, err := resolveRecordID(cmd.Context(), app, d, args[0])
			if err != nil {
				return err
			}

			var edit service.RecordEdit
			flags := cmd.Flags()
			if flags.Changed("at") {
				minute, err := resolveMinute(app, at)
				if err != nil {
					return err
				}
				edit.Minute = &minute
			}
			if flags.Changed("name") {
				edit.Name = &name
			}
			if flags.Changed("min") {
				edit.DurationMin = &minutes
			}
			if flags.Changed("kcal") {
				edit.CaloriesBurned = &kcal
			}
			if len(args) > 1 {
				edit.Foods = directive.ExtractFoods(strings.Join(args[1:], "、"))
				if len(edit.Foods) == 0 {
					return fmt.Errorf("no foods with amounts found in %q", strings.Join(args[1:], " "))
				}
			}

			if ref.Workout {
				w, err := app.Activity.EditWorkout(cmd.Context(), ref.ID, edit)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s (%s, %dkcal)\n",
					formatter.StyleGreen.Render("Updated workout"),
					formatter.Clock(w.Minute),
					formatter.Bold(w.Name),
					formatter.TruncID(w.ID),
					formatter.FormatMinutes(w.DurationMin),
					w.CaloriesBurned,
				)
				return nil
			}
			m, err := app.Activity.EditMeal(cmd.Context(), ref.ID, edit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMeal(m))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date the record was logged on (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&at, "at", "", "New time (HH:MM)")
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().IntVar(&minutes, "min", 0, "New duration in minutes (workouts)")
	cmd.Flags().IntVar(&kcal, "kcal", 0, "New calories burned (workouts)")

	return cmd
}

func newLogDeleteCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a meal or workout by ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			ref, err := resolveRecordID(cmd.Context(), app, d, args[0])
			if err != nil {
				return err
			}

			kind := "meal"
			if ref.Workout {
				kind = "workout"
				err = app.Activity.DeleteWorkout(cmd.Context(), ref.ID)
			} else {
				err = app.Activity.DeleteMeal(cmd.Context(), ref.ID)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, formatter.TruncID(ref.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}
