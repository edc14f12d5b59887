package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version задается при сборке через -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notely",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notely version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
