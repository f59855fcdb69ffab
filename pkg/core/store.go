package core

// SubmoduleStore is implemented by every submodule storage backend.
// Implementations must be safe for concurrent use once constructed.
type SubmoduleStore interface {
	// Name identifies the backend. It is persisted in the parent repository's
	// store configuration and selects the backend again on reopen, so it must
	// never change for a shipped backend.
	Name() string

	// SubmodulePath returns the directory a submodule with the given logical
	// name would occupy. It performs no I/O and never fails.
	//
	// The clone machinery uses it to decide where raw submodule content goes.
	SubmodulePath(name string) string

	// LoadSubmodule returns a usable handle to the named submodule.
	// A nil Submodule with a nil error means the backend does not manage
	// submodule content at all. An error is only returned when a backend that
	// materializes submodules failed to do so.
	LoadSubmodule(settings Settings, name string) (*Submodule, error)
}
