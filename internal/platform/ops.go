package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Init creates the submodule store for the repository at repoPath and
// persists the chosen backend's name so Load can select it again.
func Init(repoPath string, opts ...Option) (*Handle, error) {
	o := applyOptions(opts)
	storeDir := filepath.Join(repoPath, o.storeDir)

	if configExists(storeDir) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInitialized, storeDir)
	}

	store := o.store
	if store == nil {
		b, err := lookupBackend(o.backend)
		if err != nil {
			return nil, err
		}
		store = b.init(storeDir, o)
	}

	settings, err := resolveSettings(o)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(storeDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := writeConfig(storeDir, storeConfig{Type: store.Name()}); err != nil {
		return nil, err
	}
	if _, err := ensureIgnore(repoPath, o.storeDir); err != nil {
		return nil, fmt.Errorf("failed to ensure .gitignore: %w", err)
	}

	if o.logger != nil {
		o.logger.Debug("initialized submodule store", "path", storeDir, "backend", store.Name())
	}

	return newHandle(repoPath, storeDir, store, settings, o.logger), nil
}

// Load reopens the submodule store of the repository at repoPath using the
// backend recorded at Init time.
func Load(repoPath string, opts ...Option) (*Handle, error) {
	o := applyOptions(opts)
	storeDir := filepath.Join(repoPath, o.storeDir)

	cfg, err := readConfig(storeDir)
	if err != nil {
		return nil, err
	}

	store := o.store
	if store == nil {
		b, err := lookupBackend(cfg.Type)
		if err != nil {
			return nil, err
		}
		store = b.load(storeDir, o)
	} else if store.Name() != cfg.Type {
		return nil, fmt.Errorf("store %q does not match persisted type %q", store.Name(), cfg.Type)
	}

	settings, err := resolveSettings(o)
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("loaded submodule store", "path", storeDir, "backend", store.Name())
	}

	return newHandle(repoPath, storeDir, store, settings, o.logger), nil
}

// Open loads the store at repoPath, initializing it first if it does not exist yet.
func Open(repoPath string, opts ...Option) (*Handle, error) {
	o := applyOptions(opts)
	if configExists(filepath.Join(repoPath, o.storeDir)) {
		return Load(repoPath, opts...)
	}
	return Init(repoPath, opts...)
}
