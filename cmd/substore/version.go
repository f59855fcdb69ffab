package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/substore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of substore",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "substore version %s\n", strings.TrimSpace(substore.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
