// Package core defines the contract between a parent repository and the
// strategy it uses to locate and materialize its submodules.
package core

// Repo is a handle to a plain repository materialized on disk.
// The same handle may be held by several Submodule values at once.
type Repo interface {
	// Path returns the working directory of the repository.
	Path() string

	// IsEmpty reports whether the repository has no commits yet.
	IsEmpty() (bool, error)
}

// Submodule is a nested repository loaded through a SubmoduleStore.
// It is never mutated after LoadSubmodule returns it.
type Submodule struct {
	// Name is the logical name exactly as the caller supplied it, never encoded.
	Name string
	Repo Repo
}
