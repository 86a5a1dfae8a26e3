package cmd

import (
	"github.com/slimkhemiri/slim-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newGateCmd(app *app) *cobra.Command {
	var (
		feature   string
		noUpgrade bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Check whether a premium feature is unlocked",
		Long:  "Check whether a premium feature is unlocked for the current session. Exits non-zero while the feature is locked.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return friendly(err)
			}

			req := domain.PremiumRequirement(feature)
			req.ShowUpgrade = !noUpgrade
			decision := domain.Evaluate(app.session.Snapshot(), req)

			if err := writeSessionOutput(cmd, app, &decision, asJSON); err != nil {
				return err
			}
			if !decision.Unlocked() {
				cmd.SilenceErrors = true
				return errFeatureLocked
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&feature, "feature", "", "Name of the gated feature")
	cmd.Flags().BoolVar(&noUpgrade, "no-upgrade", false, "Do not offer the upgrade action to free users")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the decision as JSON")

	return cmd
}
