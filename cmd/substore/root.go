package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/substore"
)

var (
	verbose bool
	repoDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "substore",
	Short: "Locate and materialize repository submodules",
	Long: `substore keeps the submodules of a repository in a pluggable store.
The default backend keeps one plain git repository per submodule under
.substore/submodules; the empty backend disables submodules entirely.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&repoDir, "repository", "R", "", "Path to the repository (defaults to the enclosing repository of the CWD)")
}

// resolveRoot returns the repository the command operates on.
func resolveRoot() (string, error) {
	if repoDir != "" {
		return repoDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return substore.FindRoot(cwd)
}

// openStore reopens the store of the current repository.
func openStore() (*substore.Handle, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, err
	}
	return substore.Load(root, substore.WithLogger(slog.Default()))
}
