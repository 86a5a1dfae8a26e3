package cmd

import (
	"errors"
	"fmt"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage locally stored secrets such as phone/api_key",
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretDeleteCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Store a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if value == "" {
				entered, err := newPrompter(cmd).AskSecret("Value")
				if err != nil {
					return err
				}
				value = entered
			}

			if err := app.secretStore.Put(cmd.Context(), args[0], value); err != nil {
				return fmt.Errorf("store secret %q: %w", args[0], err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Stored secret %s\n", args[0])
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Secret value (prompted when empty)")

	return cmd
}

func newSecretDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.secretStore.Delete(cmd.Context(), args[0])
			if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
				return fmt.Errorf("delete secret %q: %w", args[0], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted secret %s\n", args[0])
			return err
		},
	}
}
