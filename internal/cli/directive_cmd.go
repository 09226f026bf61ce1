package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/dayline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDirectiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directive",
		Short: "Manage the day's coaching directive",
	}

	cmd.AddCommand(
		newDirectiveSetCmd(app),
		newDirectiveShowCmd(app),
		newDirectiveClearCmd(app),
	)

	return cmd
}

func newDirectiveSetCmd(app *App) *cobra.Command {
	var date, file string

	cmd := &cobra.Command{
		Use:   "set [text]",
		Short: "Store the directive text (from args, --file, or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}

			var text string
			switch {
			case len(args) > 0:
				text = strings.Join(args, " ")
			case file != "":
				b, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading directive file: %w", err)
				}
				text = string(b)
			default:
				if app.interactive() {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Paste the directive, then Ctrl-D:"))
				}
				b, err := io.ReadAll(app.stdin())
				if err != nil {
					return fmt.Errorf("reading directive from stdin: %w", err)
				}
				text = string(b)
			}

			update, err := app.Directives.Set(cmd.Context(), d, text)
			if err != nil {
				return err
			}
			directive, items, err := app.Directives.Get(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("Directive saved for"), d)
			if update.ProgressLost() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render(fmt.Sprintf(
					"Progress reset: %d completed item(s) cleared, %d record(s) unlinked", update.Reset, update.Unlinked)))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(items, directive.Completed))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the directive from a file")

	return cmd
}

func newDirectiveShowCmd(app *App) *cobra.Command {
	var date string
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored directive",
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
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), directive.Message)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Directive "+d, directive.Message))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(items, directive.Completed))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the stored text")

	return cmd
}

func newDirectiveClearCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the directive (logged records are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			if err := app.Directives.Clear(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Directive cleared for %s\n", d)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}
