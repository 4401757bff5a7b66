package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"reviews_carousel/internal/app"
)

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage places API credentials",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored credentials (API key masked)",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			st, err := app.NewSettings(b.Settings).Status(cmd.Context())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <api-key> <place-id>",
		Short: "Store places API credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			if err := app.NewSettings(b.Settings).Save(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("saving credentials: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Credentials saved.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			if err := app.NewSettings(b.Settings).Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clearing credentials: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Credentials cleared.")
			return nil
		},
	})
	return cmd
}
