package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/substore/pkg/core"
	"github.com/aretw0/substore/pkg/git"
	"github.com/aretw0/substore/pkg/repo"
)

type fakeRepo struct {
	path string
}

func (r *fakeRepo) Path() string           { return r.path }
func (r *fakeRepo) IsEmpty() (bool, error) { return true, nil }

func TestStore_Name(t *testing.T) {
	s := Init(t.TempDir())
	for i := 0; i < 3; i++ {
		if got := s.Name(); got != "default" {
			t.Fatalf("Name() = %q, want %q", got, "default")
		}
	}
}

func TestStore_SubmodulePath(t *testing.T) {
	s := Init("/repo/.store")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Slashes", in: "with/slashes/", want: "/repo/.store/776974682f736c61736865732f"},
		{name: "Plain", in: "sub", want: "/repo/.store/737562"},
		{name: "Backslash", in: `a\b`, want: "/repo/.store/615c62"},
		{name: "NUL Byte", in: "a\x00b", want: "/repo/.store/610062"},
		{name: "Dot Dot", in: "..", want: "/repo/.store/2e2e"},
		{name: "Multibyte", in: "é", want: "/repo/.store/c3a9"},
		{name: "Empty", in: "", want: "/repo/.store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SubmodulePath(tt.in)
			if filepath.ToSlash(got) != tt.want {
				t.Errorf("SubmodulePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeName_Injective(t *testing.T) {
	names := []string{"", "a", "b", "ab", "a/b", "a\\b", "a\x00", "\x00a", "sub", "SUB", "with/slashes/", "with/slashes"}
	seen := make(map[string]string)

	for _, name := range names {
		enc := EncodeName(name)
		if len(enc) != 2*len(name) {
			t.Errorf("EncodeName(%q) has length %d, want %d", name, len(enc), 2*len(name))
		}
		if strings.Trim(enc, "0123456789abcdef") != "" {
			t.Errorf("EncodeName(%q) = %q contains non-hex characters", name, enc)
		}
		if prev, ok := seen[enc]; ok {
			t.Errorf("EncodeName collision: %q and %q both map to %q", prev, name, enc)
		}
		seen[enc] = name

		dec, err := DecodeName(enc)
		if err != nil || dec != name {
			t.Errorf("DecodeName(EncodeName(%q)) = %q, %v", name, dec, err)
		}
	}
}

func TestDecodeName_Invalid(t *testing.T) {
	for _, in := range []string{"xyz", "abc", "737562.lock"} {
		if _, err := DecodeName(in); err == nil {
			t.Errorf("DecodeName(%q) expected error", in)
		}
	}
}

func TestStore_InitAndLoadAgree(t *testing.T) {
	root := t.TempDir()
	initStore := Init(root)
	loadStore := Load(root)

	for _, name := range []string{"sub", "with/slashes/", ""} {
		if a, b := initStore.SubmodulePath(name), loadStore.SubmodulePath(name); a != b {
			t.Errorf("Init/Load disagree for %q: %q vs %q", name, a, b)
		}
	}
}

func TestStore_SubmodulePathDoesNoIO(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")
	s := Init(root)

	before := s.SubmodulePath("sub")

	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Fatalf("SubmodulePath must not create the root, stat err = %v", err)
	}

	if err := os.MkdirAll(before, 0755); err != nil {
		t.Fatal(err)
	}
	if after := s.SubmodulePath("sub"); after != before {
		t.Errorf("SubmodulePath changed after target was created: %q vs %q", before, after)
	}
}

func TestStore_LoadSubmodule_KeepsOriginalName(t *testing.T) {
	root := t.TempDir()
	var gotPath string
	var gotSettings core.Settings

	s := Init(root, WithBootstrapper(func(settings core.Settings, path string) (core.Repo, error) {
		gotSettings = settings
		gotPath = path
		return &fakeRepo{path: path}, nil
	}))

	settings := core.Settings{UserName: "Some One"}
	sub, err := s.LoadSubmodule(settings, "with/slashes/")
	if err != nil {
		t.Fatalf("LoadSubmodule failed: %v", err)
	}
	if sub == nil {
		t.Fatal("LoadSubmodule returned nil submodule")
	}
	if sub.Name != "with/slashes/" {
		t.Errorf("Name = %q, want unencoded name", sub.Name)
	}
	if gotPath != s.SubmodulePath("with/slashes/") {
		t.Errorf("bootstrap path = %q, want %q", gotPath, s.SubmodulePath("with/slashes/"))
	}
	if gotSettings != settings {
		t.Errorf("bootstrap settings = %+v, want %+v", gotSettings, settings)
	}
	if sub.Repo.Path() != gotPath {
		t.Errorf("Repo.Path() = %q, want %q", sub.Repo.Path(), gotPath)
	}
}

func TestStore_LoadSubmodule_PropagatesErrorUnchanged(t *testing.T) {
	want := &repo.InitError{Path: "x", Op: "init", Err: errors.New("disk on fire")}
	calls := 0

	s := Init(t.TempDir(), WithBootstrapper(func(core.Settings, string) (core.Repo, error) {
		calls++
		return nil, want
	}))

	sub, err := s.LoadSubmodule(core.Settings{}, "sub")
	if sub != nil {
		t.Errorf("expected nil submodule on failure, got %+v", sub)
	}
	if err != want {
		t.Errorf("error was translated: got %v (%T), want the bootstrap error itself", err, err)
	}
	if calls != 1 {
		t.Errorf("bootstrap called %d times, want exactly 1 (no retry)", calls)
	}
}

func TestStore_LoadSubmodule_FreshRoot(t *testing.T) {
	if !git.IsInstalled() {
		t.Skip("git not installed")
	}

	root := filepath.Join(t.TempDir(), "store")
	s := Init(root)

	sub, err := s.LoadSubmodule(core.Settings{DefaultBranch: "main"}, "sub")
	if err != nil {
		t.Fatalf("LoadSubmodule failed: %v", err)
	}
	if sub.Name != "sub" {
		t.Errorf("Name = %q, want %q", sub.Name, "sub")
	}

	wantPath := filepath.Join(root, "737562")
	if sub.Repo.Path() != wantPath {
		t.Errorf("Repo.Path() = %q, want %q", sub.Repo.Path(), wantPath)
	}
	if _, err := os.Stat(filepath.Join(wantPath, ".git")); err != nil {
		t.Errorf("nested repository not created: %v", err)
	}

	isEmpty, err := sub.Repo.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if !isEmpty {
		t.Error("freshly bootstrapped repository should be empty")
	}

	// Loading again reopens the same repository.
	again, err := s.LoadSubmodule(core.Settings{}, "sub")
	if err != nil {
		t.Fatalf("second LoadSubmodule failed: %v", err)
	}
	if again.Repo.Path() != wantPath {
		t.Errorf("second load path = %q, want %q", again.Repo.Path(), wantPath)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 1 || names[0] != "sub" {
		t.Errorf("List() = %v, want [sub]", names)
	}
}

func TestStore_LoadSubmodule_TargetIsFile(t *testing.T) {
	root := t.TempDir()
	s := Init(root)

	if err := os.WriteFile(s.SubmodulePath("sub"), []byte("not a repo"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := s.LoadSubmodule(core.Settings{}, "sub")
	var initErr *repo.InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *repo.InitError, got %v (%T)", err, err)
	}
	if !errors.Is(err, repo.ErrNotDirectory) {
		t.Errorf("expected ErrNotDirectory, got %v", err)
	}
}

func TestStore_ConcurrentLoadSameName(t *testing.T) {
	if !git.IsInstalled() {
		t.Skip("git not installed")
	}

	s := Init(t.TempDir())

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.LoadSubmodule(core.Settings{}, "shared"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent LoadSubmodule failed: %v", err)
	}
}

func TestStore_LoadSubmodule_StaleLock(t *testing.T) {
	if !git.IsInstalled() {
		t.Skip("git not installed")
	}

	root := t.TempDir()
	s := Init(root)

	// Lock left behind by a process that died mid-bootstrap.
	lockPath := s.SubmodulePath("sub") + ".lock"
	if err := os.WriteFile(lockPath, nil, 0666); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-2 * git.StaleLockAge)
	if err := os.Chtimes(lockPath, old, old); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := s.LoadSubmodule(core.Settings{}, "sub")
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("LoadSubmodule failed: %v", err)
		}
	case <-time.After(git.DefaultLockTimeout + 5*time.Second):
		t.Fatal("LoadSubmodule did not return with a stale lock present")
	}

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("lock file left behind")
	}
}

func TestStore_List(t *testing.T) {
	t.Run("Missing Root", func(t *testing.T) {
		s := Init(filepath.Join(t.TempDir(), "missing"))
		names, err := s.List()
		if err != nil || len(names) != 0 {
			t.Errorf("List() = %v, %v; want empty, nil", names, err)
		}
	})

	t.Run("Skips Foreign Entries", func(t *testing.T) {
		root := t.TempDir()
		s := Init(root)

		for _, dir := range []string{EncodeName("a/b"), "not-hex"} {
			if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
				t.Fatal(err)
			}
		}
		if err := os.WriteFile(filepath.Join(root, EncodeName("file")), nil, 0644); err != nil {
			t.Fatal(err)
		}

		names, err := s.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(names) != 1 || names[0] != "a/b" {
			t.Errorf("List() = %v, want [a/b]", names)
		}
	})
}
