// Package repo provides the local git-backed implementation of the
// read-only repository view validators consume.
package repo

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Git executes git commands against one working tree.
type Git struct {
	repoPath string
}

// NewGit creates a git runner for the repository at the given path.
func NewGit(repoPath string) *Git {
	return &Git{repoPath: repoPath}
}

// run executes a git command and returns its trimmed output.
func (g *Git) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.repoPath
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

// IsRepository returns true if the path is inside a git working tree.
func (g *Git) IsRepository() bool {
	out, err := g.run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// CommitCount returns the number of commits reachable from HEAD.
func (g *Git) CommitCount() (int, error) {
	out, err := g.run("rev-list", "--count", "HEAD")
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("parse commit count %q: %w", out, err)
	}
	return count, nil
}

// CommitSubjects returns the subject lines of the most recent n commits,
// newest first.
func (g *Git) CommitSubjects(n int) ([]string, error) {
	out, err := g.run("log", "--format=%s", "-n", strconv.Itoa(n))
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// TrackedFiles returns the repo-relative paths of all tracked files.
func (g *Git) TrackedFiles() ([]string, error) {
	out, err := g.run("ls-files")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
