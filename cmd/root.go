package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slim",
		Short:         "Slim Design System CLI: sign in and check premium access",
		Long:          "slim keeps a local Slim Design System session, signs in with email and password, Google or a phone number, and tells you which premium features your plan unlocks.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
	} else {
		rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
			app.session.Close()
			_ = app.logger.Sync()
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newWhoamiCmd(app),
		newRefreshCmd(app),
		newGateCmd(app),
		newPlansCmd(app),
		newUpgradeCmd(app),
		newProfileCmd(app),
		newSecretCmd(app),
	)

	return rootCmd
}
