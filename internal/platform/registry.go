package platform

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/aretw0/substore/pkg/adapters/empty"
	"github.com/aretw0/substore/pkg/adapters/fs"
	"github.com/aretw0/substore/pkg/core"
)

// DefaultBackend is the backend used by Init unless WithBackend says otherwise.
const DefaultBackend = fs.StoreName

// submodulesDir is where the default backend keeps submodules, relative to the store dir.
const submodulesDir = "submodules"

// backend builds a store for a store directory. init is used for fresh stores,
// load for reopening one.
type backend struct {
	init func(storeDir string, o *options) core.SubmoduleStore
	load func(storeDir string, o *options) core.SubmoduleStore
}

var backends = map[string]backend{
	fs.StoreName: {
		init: func(storeDir string, o *options) core.SubmoduleStore {
			return fs.Init(filepath.Join(storeDir, submodulesDir), fsOptions(o)...)
		},
		load: func(storeDir string, o *options) core.SubmoduleStore {
			return fs.Load(filepath.Join(storeDir, submodulesDir), fsOptions(o)...)
		},
	},
	empty.StoreName: {
		init: func(string, *options) core.SubmoduleStore { return empty.New() },
		load: func(string, *options) core.SubmoduleStore { return empty.New() },
	},
}

func fsOptions(o *options) []fs.Option {
	opts := []fs.Option{fs.WithLogger(o.logger)}
	if o.bootstrap != nil {
		opts = append(opts, fs.WithBootstrapper(o.bootstrap))
	}
	return opts
}

func lookupBackend(name string) (backend, error) {
	b, ok := backends[name]
	if !ok {
		return backend{}, fmt.Errorf("%w: %q", ErrUnknownStoreType, name)
	}
	return b, nil
}

// Backends returns the names of all known backends, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
