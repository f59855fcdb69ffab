package main

import (
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/substore/pkg/git"
)

var (
	gitmodulesRev string
	matchPattern  string
)

var printGitmodulesCmd = &cobra.Command{
	Use:   "print-gitmodules",
	Short: "Print the submodules declared in .gitmodules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		modules, err := declaredModules(root, gitmodulesRev)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, m := range modules {
			fmt.Fprintf(out, "name:%s\nurl:%s\npath:%s\n", m.Name, m.URL, m.Path)
		}
		return nil
	},
}

// declaredModules reads .gitmodules of the repository at root, at rev when
// set, keeping only modules whose name matches --match.
func declaredModules(root, rev string) ([]git.Module, error) {
	client := git.NewClient(root, "", slog.Default())
	modules, err := client.Modules(rev)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", git.GitmodulesFile, err)
	}
	return filterNames(modules, func(m git.Module) string { return m.Name })
}

// filterNames keeps the items whose name matches --match (all when unset).
func filterNames[T any](items []T, name func(T) string) ([]T, error) {
	if matchPattern == "" {
		return items, nil
	}
	if !doublestar.ValidatePattern(matchPattern) {
		return nil, fmt.Errorf("invalid --match pattern %q", matchPattern)
	}

	var kept []T
	for _, item := range items {
		ok, err := doublestar.Match(matchPattern, name(item))
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

func init() {
	rootCmd.AddCommand(printGitmodulesCmd)
	printGitmodulesCmd.Flags().StringVarP(&gitmodulesRev, "revision", "r", "", "Read .gitmodules at this revision instead of the working tree")
	rootCmd.PersistentFlags().StringVar(&matchPattern, "match", "", "Only consider submodules whose name matches this glob (supports **)")
}
