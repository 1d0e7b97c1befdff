package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd runs serve when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "communityhub",
	Short: "Community Hub API server",
	Long: `Community Hub serves the JSON API for users, organizations, events and
event participation. Configuration is read from environment variables, with
a .env file loaded outside production.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
