package repo

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// initTestRepo creates a git repository with the given files, one commit
// per message. Tests are skipped when git is unavailable.
func initTestRepo(t *testing.T, files map[string]string, messages ...string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "test")

	for path, content := range files {
		full := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	runGit(t, dir, "add", ".")

	for _, msg := range messages {
		runGit(t, dir, "commit", "--allow-empty", "-m", msg)
	}
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v: %s", args, err, out)
	}
}

func TestOpenRejectsNonRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("expected error for directory without git")
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestCommitCountAndMessages(t *testing.T) {
	dir := initTestRepo(t, map[string]string{"main.py": "x = 1\n"},
		"initial solution", "add parsing", "polish output")

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	count, err := r.CommitCount()
	if err != nil {
		t.Fatalf("CommitCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("commit count = %d, want 3", count)
	}

	messages, err := r.CommitMessages(2)
	if err != nil {
		t.Fatalf("CommitMessages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0] != "polish output" || messages[1] != "add parsing" {
		t.Errorf("messages = %v, want newest first", messages)
	}
}

func TestUnitsParsePython(t *testing.T) {
	dir := initTestRepo(t, map[string]string{
		"main.py":   "def add(a, b):\n    return a + b\n",
		"broken.py": "def broken(:\n",
		"notes.txt": "not python\n",
	}, "initial solution")

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	units, err := r.Units()
	if err != nil {
		t.Fatalf("Units failed: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2 (only .py files)", len(units))
	}
	if units[0].Path != "broken.py" || units[1].Path != "main.py" {
		t.Errorf("unit order = %s, %s; want path order", units[0].Path, units[1].Path)
	}

	if units[1].Root == nil {
		t.Fatal("expected parse tree for valid source")
	}
	if units[1].Root.HasError() {
		t.Error("valid source must not report syntax errors")
	}
	if units[0].Root != nil && !units[0].Root.HasError() {
		t.Error("invalid source must report syntax errors")
	}
}

func TestFileContentsAndPaths(t *testing.T) {
	dir := initTestRepo(t, map[string]string{
		"README.md":   "# Solution\n",
		"src/util.py": "pass\n",
	}, "initial solution")

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	data, err := r.FileContents("README.md")
	if err != nil {
		t.Fatalf("FileContents failed: %v", err)
	}
	if string(data) != "# Solution\n" {
		t.Errorf("contents = %q", data)
	}

	paths, err := r.FilePaths()
	if err != nil {
		t.Fatalf("FilePaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("paths = %v, want 2 entries", paths)
	}
}
