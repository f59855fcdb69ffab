package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/substore"
)

var initBackend string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the submodule store of a repository",
	Long: `Initialize the submodule store of the repository in the current directory
(or --repository). The chosen backend is recorded in .substore/store.yaml and
used every time the store is reopened.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := repoDir
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			root = cwd
		}

		store, err := substore.Init(root, substore.WithBackend(initBackend), substore.WithLogger(slog.Default()))
		if err != nil {
			return fmt.Errorf("failed to initialize submodule store: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s submodule store in %s\n", store.Name(), store.StoreDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initBackend, "backend", "default", fmt.Sprintf("Storage backend %v", substore.Backends()))
}
