package cmd

import (
	"errors"
	"fmt"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local profile",
	}

	cmd.AddCommand(newProfileSetCmd(app))

	return cmd
}

func newProfileSetCmd(app *app) *cobra.Command {
	var (
		name  string
		email string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the display name or email of the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update domain.ProfileUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("email") {
				update.Email = &email
			}
			if update.Name == nil && update.Email == nil {
				return errors.New("nothing to update: pass --name or --email")
			}

			if err := restoreSession(cmd, app); err != nil {
				return friendly(err)
			}

			identity, err := app.session.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return friendly(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile updated for %s\n", identity.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&email, "email", "", "New email address")

	return cmd
}
