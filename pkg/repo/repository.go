// Package repo opens or creates plain git repositories used as nested
// (submodule) repositories.
package repo

import (
	"github.com/aretw0/substore/pkg/core"
	"github.com/aretw0/substore/pkg/git"
)

// Repository is a plain git repository on disk. It implements core.Repo.
type Repository struct {
	path string
	git  *git.Client
}

var _ core.Repo = (*Repository)(nil)

// Path returns the working directory of the repository.
func (r *Repository) Path() string {
	return r.path
}

// IsEmpty reports whether the repository has no commits yet.
func (r *Repository) IsEmpty() (bool, error) {
	has, err := r.git.HasCommits()
	if err != nil {
		return false, err
	}
	return !has, nil
}

// Git exposes the client bound to this repository.
func (r *Repository) Git() *git.Client {
	return r.git
}
