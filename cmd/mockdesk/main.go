// mockdesk serves simulated HubSpot marketing and Zendesk support APIs as
// MCP tools over stdio, backed by an in-process record store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mockdesk/mockdesk/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "mockdesk",
	Short:        "Simulated HubSpot and Zendesk APIs served as MCP tools",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mockdesk %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
