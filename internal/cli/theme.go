package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"reviews_carousel/internal/app"
	"reviews_carousel/internal/domain"
)

func newThemeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the widget theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current theme and the available ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			cur := app.NewThemeService(cmd.Context(), b.Settings).Current()
			out := cmd.OutOrStdout()
			for i, t := range domain.Themes {
				mark := " "
				if t == cur {
					mark = "*"
				}
				tr := t.Transition()
				fmt.Fprintf(out, "%s %d %-10s %s  %s\n", mark, i+1, t, tr.PrimaryColor, tr.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name|1-5>",
		Short: "Switch to a theme by name or shortcut number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			svc := app.NewThemeService(cmd.Context(), b.Settings)
			var (
				tr      domain.Transition
				changed bool
			)
			if n, aerr := strconv.Atoi(args[0]); aerr == nil {
				tr, changed, err = svc.SwitchByShortcut(cmd.Context(), n)
			} else {
				var t domain.Theme
				if t, err = domain.ParseTheme(args[0]); err == nil {
					tr, changed, err = svc.Switch(cmd.Context(), t)
				}
			}
			if errors.Is(err, domain.ErrUnknownTheme) {
				return usageError{msg: err.Error()}
			}
			if err != nil {
				return err
			}
			printTransition(cmd.OutOrStdout(), tr, changed)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Cycle to the following theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			tr, err := app.NewThemeService(cmd.Context(), b.Settings).Cycle(cmd.Context())
			if err != nil {
				return err
			}
			printTransition(cmd.OutOrStdout(), tr, true)
			return nil
		},
	})
	return cmd
}

func printTransition(w io.Writer, tr domain.Transition, changed bool) {
	if !changed {
		fmt.Fprintf(w, "Theme already %s.\n", tr.Theme)
		return
	}
	fmt.Fprintf(w, "Theme set to %s (%s): %s\n", tr.Theme, tr.Name, tr.Description)
}
