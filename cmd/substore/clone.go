package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/substore/pkg/git"
)

var cloneCmd = &cobra.Command{
	Use:   "clone [name...]",
	Short: "Clone submodules declared in .gitmodules into the store",
	Long: `Clone each named submodule (or every declared submodule matching --match)
into the directory chosen by the store, then load it.
Submodules whose store directory holds a repository without commits are
fetched in place; submodules that already have commits are only loaded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && matchPattern != "" {
			return errors.New("--match cannot be combined with explicit submodule names")
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		declared, err := declaredModules(store.RepoPath, "")
		if err != nil {
			return err
		}

		targets := declared
		if len(args) > 0 {
			targets = targets[:0:0]
			for _, name := range args {
				m, ok := git.Find(declared, name)
				if !ok {
					return fmt.Errorf("submodule %q is not declared in %s", name, git.GitmodulesFile)
				}
				targets = append(targets, m)
			}
		}
		if len(targets) == 0 {
			return errors.New("no submodules to clone")
		}

		client := git.NewClient(store.RepoPath, "", slog.Default())
		out := cmd.OutOrStdout()

		for _, m := range targets {
			dest := store.SubmodulePath(m.Name)
			if dest == "" {
				return fmt.Errorf("submodules are disabled for this repository (backend %q)", store.Name())
			}

			cloned := false
			if _, err := os.Stat(dest); os.IsNotExist(err) {
				url, err := client.ResolveURL(m.URL)
				if err != nil {
					return fmt.Errorf("failed to resolve url of %q: %w", m.Name, err)
				}
				slog.Debug("cloning submodule", "name", m.Name, "url", url, "dest", dest)
				if err := client.Clone(url, dest); err != nil {
					return fmt.Errorf("failed to clone submodule %q: %w", m.Name, err)
				}
				cloned = true
			}

			sub, err := store.Submodule(m.Name)
			if err != nil {
				return fmt.Errorf("failed to load submodule %q: %w", m.Name, err)
			}

			if !cloned {
				empty, err := sub.Repo.IsEmpty()
				if err != nil {
					return fmt.Errorf("failed to inspect submodule %q: %w", m.Name, err)
				}
				if empty {
					url, err := client.ResolveURL(m.URL)
					if err != nil {
						return fmt.Errorf("failed to resolve url of %q: %w", m.Name, err)
					}
					slog.Debug("populating empty submodule", "name", m.Name, "url", url, "dest", sub.Repo.Path())
					if err := git.NewClient(sub.Repo.Path(), "", slog.Default()).Populate(url); err != nil {
						return fmt.Errorf("failed to clone submodule %q: %w", m.Name, err)
					}
					cloned = true
				}
			}

			if cloned {
				fmt.Fprintf(out, "Cloned submodule %q\n", m.Name)
			} else {
				fmt.Fprintf(out, "Submodule %q already cloned\n", m.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}
