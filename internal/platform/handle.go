package platform

import (
	"log/slog"

	"github.com/aretw0/introspection"

	"github.com/aretw0/substore/pkg/core"
)

// Handle is an opened submodule store bound to its parent repository and
// the user settings applied when loading submodules.
// It is immutable and safe for concurrent use.
type Handle struct {
	RepoPath string
	StoreDir string
	Store    core.SubmoduleStore
	Settings core.Settings
	logger   *slog.Logger
}

var _ core.SubmoduleStore = (*Handle)(nil)

func newHandle(repoPath, storeDir string, store core.SubmoduleStore, settings core.Settings, logger *slog.Logger) *Handle {
	return &Handle{
		RepoPath: repoPath,
		StoreDir: storeDir,
		Store:    store,
		Settings: settings,
		logger:   logger,
	}
}

// Name returns the backend name.
func (h *Handle) Name() string {
	return h.Store.Name()
}

// SubmodulePath delegates to the backend.
func (h *Handle) SubmodulePath(name string) string {
	return h.Store.SubmodulePath(name)
}

// LoadSubmodule delegates to the backend with explicit settings.
func (h *Handle) LoadSubmodule(settings core.Settings, name string) (*core.Submodule, error) {
	return h.Store.LoadSubmodule(settings, name)
}

// Submodule loads the named submodule with the handle's own settings.
func (h *Handle) Submodule(name string) (*core.Submodule, error) {
	sub, err := h.Store.LoadSubmodule(h.Settings, name)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("failed to load submodule", "name", name, "error", err)
		}
		return nil, err
	}
	return sub, nil
}

// HandleState exposes internal state for observability.
type HandleState struct {
	RepoPath string `json:"repo_path"`
	StoreDir string `json:"store_dir"`
	Backend  string `json:"backend"`
	Store    any    `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (h *Handle) State() any {
	state := HandleState{
		RepoPath: h.RepoPath,
		StoreDir: h.StoreDir,
		Backend:  h.Store.Name(),
	}
	if intro, ok := h.Store.(introspection.Introspectable); ok {
		state.Store = intro.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (h *Handle) ComponentType() string {
	return "submodule_store_handle"
}

var _ introspection.Introspectable = (*Handle)(nil)
var _ introspection.Component = (*Handle)(nil)
