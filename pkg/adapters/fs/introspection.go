package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Backend string `json:"backend"`
	Root    string `json:"root"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{
		Backend: StoreName,
		Root:    s.root,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "submodule_store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
