package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// LocalRepository is a check.Repository over a local git working tree.
// Git queries and source parsing are performed once, on first use, and
// cached for the lifetime of the instance. The type is read-only after
// construction and safe to share across concurrent runs.
type LocalRepository struct {
	path string
	git  *Git

	unitsOnce sync.Once
	units     []check.Unit
	unitsErr  error

	pathsOnce sync.Once
	paths     []string
	pathsErr  error
}

// Open returns a LocalRepository for the given path. It fails when the
// path does not exist or is not inside a git working tree, so an unusable
// repository surfaces at configuration time rather than mid-run.
func Open(path string) (*LocalRepository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve repository path %q: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	g := NewGit(abs)
	if !g.IsRepository() {
		return nil, fmt.Errorf("open repository: %s is not a git working tree", abs)
	}
	return &LocalRepository{path: abs, git: g}, nil
}

// Path returns the absolute path of the working tree.
func (r *LocalRepository) Path() string {
	return r.path
}

// Units returns the parsed Python source units, ordered by path. A unit
// whose Root is nil could not be parsed at all.
func (r *LocalRepository) Units() ([]check.Unit, error) {
	r.unitsOnce.Do(func() {
		r.units, r.unitsErr = r.parseUnits()
	})
	return r.units, r.unitsErr
}

// parseUnits reads and parses every tracked Python file.
func (r *LocalRepository) parseUnits() ([]check.Unit, error) {
	paths, err := r.FilePaths()
	if err != nil {
		return nil, err
	}

	var units []check.Unit
	for _, p := range paths {
		if !strings.HasSuffix(p, ".py") {
			continue
		}
		source, err := os.ReadFile(filepath.Join(r.path, p))
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", p, err)
		}
		units = append(units, check.Unit{
			Path:   p,
			Source: source,
			Root:   parsePython(source),
		})
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Path < units[j].Path })
	return units, nil
}

// parsePython parses Python source with tree-sitter. It returns nil when
// the parser fails outright; syntactically invalid source still yields a
// tree whose root reports HasError.
func parsePython(source []byte) *sitter.Node {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return nil
	}
	return tree.RootNode()
}

// CommitCount returns the number of commits reachable from HEAD.
func (r *LocalRepository) CommitCount() (int, error) {
	return r.git.CommitCount()
}

// CommitMessages returns the subject lines of the most recent n commits.
func (r *LocalRepository) CommitMessages(n int) ([]string, error) {
	return r.git.CommitSubjects(n)
}

// FileContents returns the raw contents of a tracked file.
func (r *LocalRepository) FileContents(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(r.path, path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// FilePaths returns the repo-relative paths of all tracked files.
func (r *LocalRepository) FilePaths() ([]string, error) {
	r.pathsOnce.Do(func() {
		r.paths, r.pathsErr = r.git.TrackedFiles()
	})
	return r.paths, r.pathsErr
}

// Verify LocalRepository implements the repository contract at compile time.
var _ check.Repository = (*LocalRepository)(nil)
