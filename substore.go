package substore

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/substore/internal/platform"
	"github.com/aretw0/substore/pkg/core"
	"github.com/aretw0/substore/pkg/repo"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Handle is an opened submodule store bound to its parent repository.
type Handle = platform.Handle

// Submodule is a loaded nested repository.
type Submodule = core.Submodule

// Settings holds the user settings applied to bootstrapped repositories.
type Settings = core.Settings

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBackend selects the backend used by Init ("default" or "empty").
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithStoreDir overrides the hidden store directory name.
func WithStoreDir(name string) Option {
	return platform.WithStoreDir(name)
}

// WithStore injects a custom backend.
func WithStore(store core.SubmoduleStore) Option {
	return platform.WithStore(store)
}

// WithSettings fixes the user settings instead of reading SUBSTORE_* variables.
func WithSettings(settings Settings) Option {
	return platform.WithSettings(settings)
}

// WithBootstrapper replaces the nested-repository bootstrap routine.
func WithBootstrapper(b repo.Bootstrapper) Option {
	return platform.WithBootstrapper(b)
}

// --- Factory ---

// Init creates the submodule store of the repository at path.
func Init(path string, opts ...Option) (*Handle, error) {
	return platform.Init(path, opts...)
}

// Load reopens the submodule store of the repository at path.
func Load(path string, opts ...Option) (*Handle, error) {
	return platform.Load(path, opts...)
}

// Open loads the store at path, creating it first when missing.
func Open(path string, opts ...Option) (*Handle, error) {
	return platform.Open(path, opts...)
}

// --- Utils ---

// Backends lists the known backend names.
func Backends() []string {
	return platform.Backends()
}

// LoadSettings reads user settings from the environment.
func LoadSettings() (Settings, error) {
	return platform.LoadSettings()
}

// FindRoot looks upwards from startDir for a repository root.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
