package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path [name]",
	Short: "Print the directory a submodule would occupy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), store.SubmodulePath(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
