package repo

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/substore/pkg/core"
	"github.com/aretw0/substore/pkg/git"
)

// Bootstrapper opens or creates a plain repository at path.
type Bootstrapper func(settings core.Settings, path string) (core.Repo, error)

// Bootstrap is the default Bootstrapper, backed by InitInternalGit.
func Bootstrap(settings core.Settings, path string) (core.Repo, error) {
	return NewBootstrapper(nil)(settings, path)
}

// NewBootstrapper returns a Bootstrapper that logs through logger.
func NewBootstrapper(logger *slog.Logger) Bootstrapper {
	return func(settings core.Settings, path string) (core.Repo, error) {
		r, err := InitInternalGit(settings, path, logger)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

// InitInternalGit opens the git repository at path, creating the directory
// and running git init first when no repository exists there yet.
//
// Concurrent calls for the same path serialize on "<path>.lock", so racing
// callers all end up with the same repository. The wait is bounded by
// git.DefaultLockTimeout and stale locks are removed.
// Every failure is reported as an *InitError.
func InitInternalGit(settings core.Settings, path string, logger *slog.Logger) (*Repository, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return nil, &InitError{Path: path, Op: "stat", Err: ErrNotDirectory}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &InitError{Path: path, Op: "mkdir", Err: err}
	}

	client := git.NewClient(path, path+".lock", logger)

	unlock, err := client.Lock()
	if err != nil {
		return nil, &InitError{Path: path, Op: "lock", Err: err}
	}
	defer unlock()

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, &InitError{Path: path, Op: "mkdir", Err: err}
	}

	if client.IsRepo() {
		return &Repository{path: path, git: client}, nil
	}

	if !git.IsInstalled() {
		return nil, &InitError{Path: path, Op: "init", Err: git.ErrNotInstalled}
	}

	if err := client.Init(settings.DefaultBranch); err != nil {
		return nil, &InitError{Path: path, Op: "init", Err: err}
	}

	if settings.UserName != "" {
		if err := client.SetConfig("user.name", settings.UserName); err != nil {
			return nil, &InitError{Path: path, Op: "configure", Err: err}
		}
	}
	if settings.UserEmail != "" {
		if err := client.SetConfig("user.email", settings.UserEmail); err != nil {
			return nil, &InitError{Path: path, Op: "configure", Err: err}
		}
	}

	if logger != nil {
		logger.Debug("initialized nested repository", "path", path)
	}

	return &Repository{path: path, git: client}, nil
}
