package git

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// GitmodulesFile is the manifest declaring a repository's submodules.
const GitmodulesFile = ".gitmodules"

// Module is one submodule declaration from a .gitmodules manifest.
type Module struct {
	Name string
	URL  string
	Path string
}

// Modules lists the submodules declared in .gitmodules, in declaration order.
// An empty rev reads the working tree copy; otherwise the manifest is read
// from that revision. A missing working tree manifest yields no modules.
//
// Parsing is left to git itself.
func (c *Client) Modules(rev string) ([]Module, error) {
	args := []string{"config", "--null"}
	if rev == "" {
		if _, err := os.Stat(filepath.Join(c.WorkDir, GitmodulesFile)); os.IsNotExist(err) {
			return nil, nil
		}
		args = append(args, "--file", GitmodulesFile)
	} else {
		args = append(args, "--blob", rev+":"+GitmodulesFile)
	}
	args = append(args, "--get-regexp", `^submodule\.`)

	out, err := c.Run(args...)
	if err != nil {
		if exitCode(err) == 1 {
			return nil, nil
		}
		return nil, err
	}

	return parseModules(out), nil
}

// parseModules reads `git config --null --get-regexp` output, where each
// record is "key\nvalue\x00".
func parseModules(out string) []Module {
	var modules []Module
	index := make(map[string]int)

	for _, record := range strings.Split(out, "\x00") {
		if record == "" {
			continue
		}
		key, value, _ := strings.Cut(record, "\n")
		key = strings.TrimPrefix(key, "submodule.")

		dot := strings.LastIndex(key, ".")
		if dot < 0 {
			continue
		}
		name, field := key[:dot], key[dot+1:]

		i, ok := index[name]
		if !ok {
			i = len(modules)
			index[name] = i
			modules = append(modules, Module{Name: name})
		}

		switch field {
		case "url":
			modules[i].URL = value
		case "path":
			modules[i].Path = value
		}
	}

	return modules
}

// Find returns the module declared under name.
func Find(modules []Module, name string) (Module, bool) {
	for _, m := range modules {
		if m.Name == name {
			return m, true
		}
	}
	return Module{}, false
}

// IsRelativeURL reports whether a submodule URL is relative to its superproject.
func IsRelativeURL(url string) bool {
	return strings.HasPrefix(url, "./") || strings.HasPrefix(url, "../")
}

// ResolveURL resolves a relative submodule URL the way git does: against the
// superproject's origin remote when it has one, else against its directory.
// Absolute URLs are returned untouched.
func (c *Client) ResolveURL(url string) (string, error) {
	if !IsRelativeURL(url) {
		return url, nil
	}

	remote, err := c.Config("remote.origin.url")
	if err != nil {
		return "", err
	}
	if remote == "" {
		return filepath.Join(c.WorkDir, url), nil
	}
	return joinRemote(remote, url), nil
}

// joinRemote joins rel onto a remote URL, treating the remote as a directory.
func joinRemote(remote, rel string) string {
	if scheme, rest, ok := strings.Cut(remote, "://"); ok {
		host, p, _ := strings.Cut(rest, "/")
		return scheme + "://" + host + path.Join("/"+p, rel)
	}
	if host, p, ok := strings.Cut(remote, ":"); ok && !filepath.IsAbs(remote) {
		// scp-like syntax, e.g. git@host:org/repo.git
		return host + ":" + strings.TrimPrefix(path.Join("/"+p, rel), "/")
	}
	return filepath.Join(remote, rel)
}
