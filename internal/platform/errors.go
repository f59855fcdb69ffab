package platform

import "errors"

// Common errors.
var (
	ErrUnknownStoreType   = errors.New("unknown submodule store type")
	ErrNotInitialized     = errors.New("submodule store is not initialized")
	ErrAlreadyInitialized = errors.New("submodule store is already initialized")
)
