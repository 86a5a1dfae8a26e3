package cmd

import (
	"context"
	"strings"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSignupCmd(app *app) *cobra.Command {
	var req domain.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a Slim account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			var err error
			if strings.TrimSpace(req.Name) == "" {
				if req.Name, err = p.Ask("Name"); err != nil {
					return err
				}
			}
			if strings.TrimSpace(req.Email) == "" {
				if req.Email, err = p.Ask("Email"); err != nil {
					return err
				}
			}
			if req.Password == "" {
				if req.Password, err = p.AskSecret("Password"); err != nil {
					return err
				}
			}
			if req.ConfirmPassword == "" {
				if req.ConfirmPassword, err = p.AskSecret("Confirm password"); err != nil {
					return err
				}
			}

			var identity domain.Identity
			err = withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating account...", func(ctx context.Context) error {
				identity, err = app.session.Signup(ctx, req)
				return err
			})
			if err != nil {
				return friendly(err)
			}

			return writeWelcome(cmd, app, identity)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name (prompted when empty)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address (prompted when empty)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (prompted when empty)")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm-password", "", "Password confirmation (prompted when empty)")

	return cmd
}
