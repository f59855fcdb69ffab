package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// ensureIgnore adds the store directory to the parent repository's
// .gitignore so nested repositories never show up as untracked content.
// It reports whether the file was modified. Non-git parents are left alone.
func ensureIgnore(repoPath, storeDir string) (bool, error) {
	if !hasFile(repoPath, ".git") {
		return false, nil
	}

	ignorePath := filepath.Join(repoPath, ".gitignore")
	ignoreEntry := "/" + filepath.ToSlash(storeDir) + "/"

	content, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == ignoreEntry {
			return false, nil
		}
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		if _, err := f.WriteString("\n"); err != nil {
			return false, err
		}
	}

	if _, err := f.WriteString(ignoreEntry + "\n"); err != nil {
		return false, err
	}

	return true, nil
}
