// Package commands defines the quickhire CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quickhire",
		Short: "Labor hiring marketplace server",
	}

	rootCmd.AddCommand(
		NewServeCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
