package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/substore/pkg/adapters/fs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List submodules materialized in the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		fsStore, ok := store.Store.(*fs.Store)
		if !ok {
			// Only the default backend keeps anything on disk.
			return nil
		}

		names, err := fsStore.List()
		if err != nil {
			return err
		}
		names, err = filterNames(names, func(s string) string { return s })
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, fsStore.SubmodulePath(name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
