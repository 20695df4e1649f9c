// Package app defines the CLI commands for the workspace-secrets server.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
)

// NewRootCmd creates the root command for the wks CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wks",
		Short: "Provision workspace secrets",
		Long: `wks reconciles per-user Kubernetes secrets for developer workspaces:
git credential secrets saved by users, and the user profile and preferences
secrets written when a workspace namespace is provisioned.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Initialize()
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Panicf("failed to bind debug flag: %v", err)
	}

	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
