package cmd

import (
	"context"
	"fmt"

	statusadapter "github.com/slimkhemiri/slim-cli/internal/adapters/render/status"
	"github.com/slimkhemiri/slim-cli/internal/application"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the subscription plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return friendly(err)
			}

			rendered, err := app.renderPlans(statusadapter.PlansView{
				Plans:    app.checkout.Plans(),
				Identity: app.session.Snapshot().Identity,
			})
			if err != nil {
				return fmt.Errorf("render plans: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newUpgradeCmd(app *app) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Start a checkout for a paid plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return friendly(err)
			}

			var session application.CheckoutSession
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating checkout session...", func(ctx context.Context) error {
				var err error
				session, err = app.checkout.StartCheckout(ctx, planID)
				return err
			})
			if err != nil {
				return friendly(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to subscribe to %s (%s):\n%s\n", session.Plan.Name, session.Plan.PriceLabel(), session.URL)
			return err
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "pro", "Plan to subscribe to (pro or enterprise)")

	return cmd
}
