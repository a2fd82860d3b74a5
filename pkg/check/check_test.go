package check

import "testing"

func TestSetContains(t *testing.T) {
	s := NewSet("a", "b", "x1")

	if !s.Contains("a") {
		t.Error("expected set to contain 'a'")
	}
	if s.Contains("c") {
		t.Error("did not expect set to contain 'c'")
	}
	if s.Contains("") {
		t.Error("did not expect set to contain empty string")
	}
}

func TestExemptMissingList(t *testing.T) {
	lists := ExceptionLists{}

	if lists.Exempt("snake_case_names", "Base") {
		t.Error("missing list must exempt nothing")
	}
}

func TestExemptIsolation(t *testing.T) {
	lists := ExceptionLists{
		"no_short_names":  NewSet("x", "y"),
		"no_exit_calls":   NewSet("main"),
	}

	if !lists.Exempt("no_short_names", "x") {
		t.Error("expected 'x' exempt for no_short_names")
	}
	if lists.Exempt("no_exit_calls", "x") {
		t.Error("exemptions for one validator must not leak to another")
	}

	// Replacing one list must not affect the other.
	lists["no_short_names"] = NewSet("z")
	if !lists.Exempt("no_exit_calls", "main") {
		t.Error("expected 'main' still exempt for no_exit_calls")
	}
	if lists.Exempt("no_short_names", "x") {
		t.Error("expected 'x' no longer exempt after replacement")
	}
}

func TestFailHelpers(t *testing.T) {
	o := Fail("no_readme")
	if o.Slug != "no_readme" || o.Message != "" {
		t.Errorf("Fail: got %+v", o)
	}

	o = Failf("camel_case_vars", "rename, e.g., WorkBook.")
	if o.Slug != "camel_case_vars" {
		t.Errorf("Failf slug: got %q", o.Slug)
	}
	if o.Message != "rename, e.g., WorkBook." {
		t.Errorf("Failf message: got %q", o.Message)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.ReadmeFilename != "README.md" {
		t.Errorf("expected README.md, got %q", s.ReadmeFilename)
	}
	if s.MinNameLength != 2 {
		t.Errorf("expected min name length 2, got %d", s.MinNameLength)
	}
	if s.LastCommitsToCheck != 5 {
		t.Errorf("expected 5 commits to check, got %d", s.LastCommitsToCheck)
	}
	if s.MaxComplexity != 7 {
		t.Errorf("expected max complexity 7, got %d", s.MaxComplexity)
	}
}
