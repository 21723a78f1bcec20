package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configFile string
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "serverpacks",
		Short:         "Server pack sync client: download and activate packs announced by the server",
		Long:          "serverpacks listens on the server's side channel for pack announcements, downloads missing pack archives into the packs directory, activates them, and asks the server to refresh.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(configFile, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.serverpacks/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConnectCmd(app),
		newInstallCmd(app),
		newRefreshCmd(app),
		newPacksCmd(app),
	)

	return rootCmd
}
