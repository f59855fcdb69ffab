// Package empty implements a submodule store that disables submodules.
package empty

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/substore/pkg/core"
)

// StoreName identifies this backend in persisted store configuration.
const StoreName = "empty"

// Store never materializes submodules and never touches the filesystem.
type Store struct{}

var _ core.SubmoduleStore = (*Store)(nil)

// New returns a Store.
func New() *Store {
	return &Store{}
}

// Name returns StoreName.
func (s *Store) Name() string {
	return StoreName
}

// SubmodulePath always returns "". It is never meant to be used for I/O.
func (s *Store) SubmodulePath(string) string {
	return ""
}

// LoadSubmodule always returns (nil, nil).
func (s *Store) LoadSubmodule(core.Settings, string) (*core.Submodule, error) {
	return nil, nil
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return struct {
		Backend string `json:"backend"`
	}{Backend: StoreName}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "submodule_store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
