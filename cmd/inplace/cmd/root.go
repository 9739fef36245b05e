// Package cmd implements the inplace CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "inplace",
		Short: "Inplace - reactive UI descriptions reconciled into live widgets",
		Long: `Inplace re-runs a plain Go description of a widget tree on every state
change and patches the live widgets in place.

Use "inplace <command> --help" for more information about a command.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("dir", ".", "Directory containing inplace.yaml")
	root.AddCommand(newDemoCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return rootCmd.Execute()
}
