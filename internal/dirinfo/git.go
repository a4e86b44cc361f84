package dirinfo

import (
	"os"
	"path/filepath"
	"strings"
)

// GitInfo reports the repository name and checked out branch that contain dir.
// Both are empty when dir is not inside a work tree. A detached HEAD is
// reported as its abbreviated hash.
func GitInfo(dir string) (repo, branch string) {
	dir = filepath.Clean(dir)
	if dir == "" || dir == "." {
		return "", ""
	}

	for search := dir; ; {
		if gitDir, ok := findGitDir(search); ok {
			return filepath.Base(search), readHead(gitDir)
		}
		parent := filepath.Dir(search)
		if parent == search {
			return "", ""
		}
		search = parent
	}
}

// findGitDir returns the git metadata directory for a work tree root. Linked
// worktrees and submodules keep a ".git" file pointing elsewhere.
func findGitDir(dir string) (string, bool) {
	dotGit := filepath.Join(dir, ".git")
	fi, err := os.Stat(dotGit)
	if err != nil {
		return "", false
	}
	if fi.IsDir() {
		return dotGit, true
	}

	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, "gitdir:") {
		return "", false
	}
	target := strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return target, true
}

func readHead(gitDir string) string {
	head, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return ""
	}

	content := strings.TrimSpace(string(head))
	if ref, ok := strings.CutPrefix(content, "ref: "); ok {
		// refs/heads/feature/x -> feature/x
		if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
			return name
		}
		parts := strings.Split(ref, "/")
		return parts[len(parts)-1]
	}

	if len(content) >= 7 {
		return content[:7]
	}
	return content
}
