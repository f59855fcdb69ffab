package git

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Common errors.
var (
	ErrNotInstalled = errors.New("git is not installed")
	ErrLockTimeout  = errors.New("timed out waiting for lock")
)

// DefaultBinary is the git executable.
const DefaultBinary = "git"

const (
	// DefaultLockTimeout bounds how long Lock waits for a live holder.
	DefaultLockTimeout = 30 * time.Second

	// StaleLockAge is the age after which a lock file is considered abandoned
	// by a crashed process and removed.
	StaleLockAge = 10 * time.Minute
)

// Client wraps git command execution with a file-based lock for process safety.
type Client struct {
	WorkDir string
	Logger  *slog.Logger

	// LockTimeout overrides DefaultLockTimeout when positive.
	LockTimeout time.Duration

	lockPath string
}

// NewClient creates a new git client for the given working directory.
// A relative lockPath is resolved against workDir.
func NewClient(workDir string, lockPath string, logger *slog.Logger) *Client {
	return &Client{
		WorkDir:  workDir,
		Logger:   logger,
		lockPath: lockPath,
	}
}

// IsInstalled reports whether the default git binary is on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath(DefaultBinary)
	return err == nil
}

func (c *Client) fullLockPath() string {
	if filepath.IsAbs(c.lockPath) {
		return c.lockPath
	}
	return filepath.Join(c.WorkDir, c.lockPath)
}

// Lock acquires a file-based lock. It blocks until the lock is acquired,
// removing lock files older than StaleLockAge, and gives up with
// ErrLockTimeout once the timeout expires.
func (c *Client) Lock() (func(), error) {
	fullLockPath := c.fullLockPath()

	timeout := c.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	deadline := time.Now().Add(timeout)

	for {
		f, err := os.OpenFile(fullLockPath, os.O_CREATE|os.O_EXCL, 0666)
		if err == nil {
			f.Close()
			return func() {
				os.Remove(fullLockPath)
			}, nil
		}

		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		if info, statErr := os.Stat(fullLockPath); statErr == nil && time.Since(info.ModTime()) > StaleLockAge {
			if c.Logger != nil {
				c.Logger.Warn("removing stale lock", "path", fullLockPath, "modified", info.ModTime())
			}
			if rmErr := os.Remove(fullLockPath); rmErr != nil && !os.IsNotExist(rmErr) {
				return nil, fmt.Errorf("failed to remove stale lock: %w", rmErr)
			}
			continue
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, fullLockPath)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Run executes a raw git command in the working directory and returns its
// trimmed standard output. Standard error is only reported on failure.
// NOTE: It does NOT acquire the lock automatically.
func (c *Client) Run(args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(DefaultBinary, args...)
	cmd.Dir = c.WorkDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo reports whether WorkDir is itself the top of a git working tree.
// A directory nested inside another repository's work tree does not count.
func (c *Client) IsRepo() bool {
	_, err := os.Stat(filepath.Join(c.WorkDir, ".git"))
	return err == nil
}

// Init initializes a new git repository. A non-empty branch becomes the
// unborn default branch.
func (c *Client) Init(branch string) error {
	if _, err := c.Run("init", "--quiet"); err != nil {
		return err
	}
	if branch == "" {
		return nil
	}
	_, err := c.Run("symbolic-ref", "HEAD", "refs/heads/"+branch)
	return err
}

// HasCommits reports whether HEAD resolves to a commit.
func (c *Client) HasCommits() (bool, error) {
	_, err := c.Run("rev-parse", "--verify", "--quiet", "HEAD")
	if err == nil {
		return true, nil
	}
	if exitCode(err) == 1 {
		return false, nil
	}
	return false, err
}

// SetConfig writes a repository-local configuration value.
func (c *Client) SetConfig(key, value string) error {
	_, err := c.Run("config", "--local", key, value)
	return err
}

// Config reads a configuration value. A missing key yields an empty string.
func (c *Client) Config(key string) (string, error) {
	out, err := c.Run("config", "--get", key)
	if err != nil {
		if exitCode(err) == 1 {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// Clone clones url into dest. Relative destinations resolve against WorkDir.
func (c *Client) Clone(url, dest string) error {
	_, err := c.Run("clone", "--quiet", url, dest)
	return err
}

// Populate fills an empty repository from url: it records url as origin,
// fetches, and checks out the remote's default branch. A remote without
// commits leaves the repository empty.
func (c *Client) Populate(url string) error {
	existing, err := c.Config("remote.origin.url")
	if err != nil {
		return err
	}
	if existing == "" {
		_, err = c.Run("remote", "add", "origin", url)
	} else {
		_, err = c.Run("remote", "set-url", "origin", url)
	}
	if err != nil {
		return err
	}

	if _, err := c.Run("fetch", "--quiet", "origin"); err != nil {
		return err
	}

	out, err := c.Run("ls-remote", "--symref", "origin", "HEAD")
	if err != nil {
		return err
	}
	branch, ok := parseSymref(out)
	if !ok {
		return nil
	}

	_, err = c.Run("checkout", "--quiet", "-B", branch, "--track", "origin/"+branch)
	return err
}

// parseSymref extracts the branch from `git ls-remote --symref` output,
// e.g. "ref: refs/heads/main\tHEAD".
func parseSymref(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		ref, ok := strings.CutPrefix(line, "ref: ")
		if !ok {
			continue
		}
		ref, _, _ = strings.Cut(ref, "\t")
		return strings.TrimPrefix(ref, "refs/heads/"), true
	}
	return "", false
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
