package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/codegauntlet/gauntlet/internal/history"
	"github.com/codegauntlet/gauntlet/internal/rules"
	"github.com/codegauntlet/gauntlet/pkg/check"
)

func render(res *rules.Result) string {
	color.NoColor = true
	var buf bytes.Buffer
	New(&buf).Render(res)
	return buf.String()
}

func TestRenderHalted(t *testing.T) {
	out := render(&rules.Result{
		Outcomes:    []check.Outcome{{Slug: "no_readme"}},
		Halted:      true,
		HaltedGroup: "readme",
	})

	if !strings.Contains(out, "✗ no_readme") {
		t.Errorf("missing failure line in %q", out)
	}
	if !strings.Contains(out, "stopped at the readme gate") {
		t.Errorf("missing halt notice in %q", out)
	}
}

func TestRenderHaltedWithMessage(t *testing.T) {
	out := render(&rules.Result{
		Outcomes:    []check.Outcome{{Slug: "syntax_error", Message: "broken.py"}},
		Halted:      true,
		HaltedGroup: "syntax",
	})

	if !strings.Contains(out, "✗ syntax_error: broken.py") {
		t.Errorf("missing message in %q", out)
	}
}

func TestRenderWarnings(t *testing.T) {
	out := render(&rules.Result{
		Outcomes: []check.Outcome{
			{Slug: "bad_commit_messages", Message: "fix"},
			{Slug: "shadows_builtin", Message: "print"},
		},
	})

	if !strings.Contains(out, "⚠ bad_commit_messages: fix") {
		t.Errorf("missing first warning in %q", out)
	}
	if !strings.Contains(out, "⚠ shadows_builtin: print") {
		t.Errorf("missing second warning in %q", out)
	}
	if !strings.Contains(out, "2 warning(s)") {
		t.Errorf("missing summary in %q", out)
	}
}

func TestRenderClean(t *testing.T) {
	out := render(&rules.Result{})

	if !strings.Contains(out, "✓ all checks passed") {
		t.Errorf("missing clean line in %q", out)
	}
}

func TestRenderRuns(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	New(&buf).RenderRuns([]history.Run{
		{
			ID:          "aaaaaaaa-0000-0000-0000-000000000000",
			Repo:        "/work/sub",
			Halted:      true,
			HaltedGroup: "commits",
			CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "bbbbbbbb-0000-0000-0000-000000000000",
			Repo:      "/work/sub",
			CreatedAt: time.Date(2026, 2, 28, 9, 30, 0, 0, time.UTC),
		},
	})
	out := buf.String()

	if !strings.Contains(out, "aaaaaaaa") {
		t.Errorf("missing run id in %q", out)
	}
	if !strings.Contains(out, "halted at commits") {
		t.Errorf("missing halted status in %q", out)
	}
	if !strings.Contains(out, "clean") {
		t.Errorf("missing clean status in %q", out)
	}
}

func TestRenderRunsEmpty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	New(&buf).RenderRuns(nil)

	if !strings.Contains(buf.String(), "no recorded runs") {
		t.Errorf("missing empty notice in %q", buf.String())
	}
}
