package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Look up foods in the nutrition catalog",
	}

	cmd.AddCommand(
		newFoodResolveCmd(app),
		newFoodSearchCmd(app),
	)

	return cmd
}

func newFoodResolveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name> [amount] [unit]",
		Short: "Resolve a food entry to nutrition",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := 100.0
			unit := "g"
			if len(args) > 1 {
				v, err := strconv.ParseFloat(args[1], 64)
				if err != nil || v <= 0 {
					return fmt.Errorf("invalid amount %q", args[1])
				}
				amount = v
			}
			if len(args) > 2 {
				unit = args[2]
			}

			n := app.Foods.Resolve(args[0], amount, unit)
			if m, ok := app.Foods.Lookup(args[0]); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n\n",
					formatter.Bold(args[0]), formatter.Dim("→"), m.Food.Name)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNutrition(n))
			return nil
		},
	}
}

func newFoodSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search the catalog by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFoodSearch(query, app.Foods.Search(query, limit)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum results")

	return cmd
}
