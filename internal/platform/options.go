package platform

import (
	"log/slog"

	"github.com/aretw0/substore/pkg/core"
	"github.com/aretw0/substore/pkg/repo"
)

// DefaultStoreDir is the hidden directory holding store configuration and data.
const DefaultStoreDir = ".substore"

// options holds the internal configuration for opening a submodule store.
type options struct {
	store     core.SubmoduleStore
	logger    *slog.Logger
	backend   string
	storeDir  string
	settings  *core.Settings
	bootstrap repo.Bootstrapper
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend:  DefaultBackend,
		storeDir: DefaultStoreDir,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the store and the bootstrap routine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackend selects the backend used by Init (e.g. "default", "empty").
// Load ignores it: the persisted type always wins.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithStoreDir overrides the hidden directory name (default ".substore").
func WithStoreDir(name string) Option {
	return func(o *options) {
		o.storeDir = name
	}
}

// WithStore injects a ready-made store (e.g. a fake in tests).
// Init persists its Name; Load returns it without consulting the registry.
func WithStore(store core.SubmoduleStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSettings fixes the user settings instead of reading them from the environment.
func WithSettings(settings core.Settings) Option {
	return func(o *options) {
		o.settings = &settings
	}
}

// WithBootstrapper replaces the nested-repository bootstrap routine of the default backend.
func WithBootstrapper(b repo.Bootstrapper) Option {
	return func(o *options) {
		o.bootstrap = b
	}
}
