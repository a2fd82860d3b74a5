package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codegauntlet/gauntlet/internal/checks"
	"github.com/codegauntlet/gauntlet/pkg/check"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Checks.ReadmeFilename != "README.md" {
		t.Errorf("expected readme_filename 'README.md', got %q", cfg.Checks.ReadmeFilename)
	}

	if cfg.Checks.MinNameLength != 2 {
		t.Errorf("expected min_name_length 2, got %d", cfg.Checks.MinNameLength)
	}

	if cfg.Checks.LastCommitsToCheck != 5 {
		t.Errorf("expected last_commits_to_check 5, got %d", cfg.Checks.LastCommitsToCheck)
	}

	if cfg.Checks.TabSize != 4 {
		t.Errorf("expected tab_size 4, got %d", cfg.Checks.TabSize)
	}

	if cfg.Checks.MaxComplexity != 7 {
		t.Errorf("expected max_complexity 7, got %d", cfg.Checks.MaxComplexity)
	}

	if cfg.Checks.MaxLineLength != 100 {
		t.Errorf("expected max_line_length 100, got %d", cfg.Checks.MaxLineLength)
	}

	if !cfg.History.Enabled {
		t.Error("expected history.enabled to be true")
	}

	if cfg.Token != "" {
		t.Errorf("expected empty token, got %q", cfg.Token)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
checks:
  readme_filename: README.rst
  min_name_length: 3
  max_complexity: 10
history:
  enabled: false
  path: /tmp/runs.db
token: min_max_challenge
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Checks.ReadmeFilename != "README.rst" {
		t.Errorf("expected readme_filename 'README.rst', got %q", cfg.Checks.ReadmeFilename)
	}

	if cfg.Checks.MinNameLength != 3 {
		t.Errorf("expected min_name_length 3, got %d", cfg.Checks.MinNameLength)
	}

	if cfg.Checks.MaxComplexity != 10 {
		t.Errorf("expected max_complexity 10, got %d", cfg.Checks.MaxComplexity)
	}

	// Unset keys keep their defaults.
	if cfg.Checks.TabSize != 4 {
		t.Errorf("expected default tab_size 4, got %d", cfg.Checks.TabSize)
	}

	if cfg.History.Enabled {
		t.Error("expected history.enabled to be false")
	}

	if cfg.History.Path != "/tmp/runs.db" {
		t.Errorf("expected history.path '/tmp/runs.db', got %q", cfg.History.Path)
	}

	if cfg.Token != "min_max_challenge" {
		t.Errorf("expected token 'min_max_challenge', got %q", cfg.Token)
	}
}

func TestSettingsMapping(t *testing.T) {
	cfg := Default()
	cfg.Checks.MaxComplexity = 12

	settings := cfg.Settings()
	if settings.MaxComplexity != 12 {
		t.Errorf("expected max complexity 12, got %d", settings.MaxComplexity)
	}
	if settings.ReadmeFilename != "README.md" {
		t.Errorf("expected readme filename 'README.md', got %q", settings.ReadmeFilename)
	}
}

func TestGetUserConfigDir(t *testing.T) {
	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	defer os.Unsetenv("XDG_CONFIG_HOME")

	dir := getUserConfigDir()
	expected := "/custom/config/gauntlet"
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestLoadOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".gauntlet.yaml")

	content := `
exceptions:
  no_short_names:
    - i
    - j
disabled:
  general:
    - no_exit_calls
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write dotfile: %v", err)
	}

	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	reg := checks.DefaultRegistry()
	if err := o.Apply(reg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !reg.Exceptions().Exempt(checks.IDNoShortNames, "i") {
		t.Error("expected 'i' to be exempt after override")
	}
	if reg.Exceptions().Exempt(checks.IDNoShortNames, "x") {
		t.Error("expected override to replace the default list")
	}

	for _, e := range reg.ErrorValidators(checks.GroupGeneral) {
		if e.ID == checks.IDNoExitCalls {
			t.Error("expected no_exit_calls to be removed")
		}
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	o, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	if len(o.Exceptions) != 0 || len(o.Disabled) != 0 {
		t.Error("expected empty overrides for missing file")
	}
}

func TestApplyUnknownValidator(t *testing.T) {
	o := &Overrides{
		Disabled: map[string][]check.ID{
			checks.GroupGeneral: {"not_a_validator"},
		},
	}
	if err := o.Apply(checks.DefaultRegistry()); err == nil {
		t.Error("expected error disabling unknown validator")
	}

	o = &Overrides{
		Disabled: map[string][]check.ID{
			"not_a_group": {checks.IDNoExitCalls},
		},
	}
	if err := o.Apply(checks.DefaultRegistry()); err == nil {
		t.Error("expected error for unknown group")
	}
}
