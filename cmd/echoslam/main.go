package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "echoslam",
		Short: "Dota 2 game state integration listener",
		Long: `Echoslam ingests the JSON snapshots Dota 2 posts over game state
integration and echoes a summary of each one. Point the uri of your
gamestate_integration_*.cfg at the serve address.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		recallCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
