// Package fs implements the default submodule store: every submodule lives in
// its own directory under a root, named by the hex encoding of its logical name.
//
// Layout:
//
//	<root>/<hex(name)>/   # one plain nested repository per submodule
package fs

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/substore/pkg/core"
	"github.com/aretw0/substore/pkg/repo"
)

// StoreName identifies this backend in persisted store configuration.
const StoreName = "default"

// Store is the filesystem-rooted SubmoduleStore.
type Store struct {
	root      string
	bootstrap repo.Bootstrapper
	logger    *slog.Logger
}

var _ core.SubmoduleStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithBootstrapper replaces the nested-repository bootstrap routine.
func WithBootstrapper(b repo.Bootstrapper) Option {
	return func(s *Store) {
		s.bootstrap = b
	}
}

// WithLogger sets the logger for the store and its default bootstrapper.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func newStore(root string, opts ...Option) *Store {
	s := &Store{root: root}
	for _, opt := range opts {
		opt(s)
	}
	if s.bootstrap == nil {
		s.bootstrap = repo.NewBootstrapper(s.logger)
	}
	return s
}

// Init creates store state for a fresh root.
func Init(root string, opts ...Option) *Store {
	return newStore(root, opts...)
}

// Load reopens the store rooted at root.
// There is no persisted backend state yet, so this matches Init.
func Load(root string, opts ...Option) *Store {
	return newStore(root, opts...)
}

// Name returns StoreName.
func (s *Store) Name() string {
	return StoreName
}

// Root returns the directory holding all submodules.
func (s *Store) Root() string {
	return s.root
}

// SubmodulePath returns root/hex(name).
func (s *Store) SubmodulePath(name string) string {
	// Hex keeps "/" and friends out of the path component. Not human readable.
	return filepath.Join(s.root, EncodeName(name))
}

// LoadSubmodule bootstraps a plain repository at SubmodulePath(name), whether
// or not content already exists there. Bootstrap errors are returned as is.
func (s *Store) LoadSubmodule(settings core.Settings, name string) (*core.Submodule, error) {
	path := s.SubmodulePath(name)
	if s.logger != nil {
		s.logger.Debug("loading submodule", "name", name, "path", path)
	}

	r, err := s.bootstrap(settings, path)
	if err != nil {
		return nil, err
	}

	return &core.Submodule{
		Name: name,
		Repo: r,
	}, nil
}

// List returns the logical names of submodules present under the root.
// Entries that are not directories or not valid encodings are skipped.
// A missing root yields no names.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read submodule store: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name, err := DecodeName(e.Name())
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// EncodeName maps every byte of name to two lower-case hex digits.
func EncodeName(name string) string {
	return hex.EncodeToString([]byte(name))
}

// DecodeName reverses EncodeName.
func DecodeName(component string) (string, error) {
	b, err := hex.DecodeString(component)
	if err != nil {
		return "", fmt.Errorf("invalid submodule directory %q: %w", component, err)
	}
	return string(b), nil
}
