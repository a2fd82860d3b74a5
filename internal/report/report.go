// Package report renders check results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/codegauntlet/gauntlet/internal/history"
	"github.com/codegauntlet/gauntlet/internal/rules"
)

// Renderer writes human-readable check reports.
type Renderer struct {
	out io.Writer
}

// New returns a Renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render writes the outcome of a run. A halted run shows the single
// blocking failure; otherwise warnings are listed, or a clean bill of
// health.
func (r *Renderer) Render(res *rules.Result) {
	if res.Halted {
		o := res.Outcomes[0]
		fmt.Fprintf(r.out, "%s %s", color.RedString("✗"), o.Slug)
		if o.Message != "" {
			fmt.Fprintf(r.out, ": %s", o.Message)
		}
		fmt.Fprintf(r.out, "\n%s\n", color.RedString("checks stopped at the %s gate", res.HaltedGroup))
		return
	}

	if len(res.Outcomes) == 0 {
		fmt.Fprintf(r.out, "%s all checks passed\n", color.GreenString("✓"))
		return
	}

	for _, o := range res.Outcomes {
		fmt.Fprintf(r.out, "%s %s", color.YellowString("⚠"), o.Slug)
		if o.Message != "" {
			fmt.Fprintf(r.out, ": %s", o.Message)
		}
		fmt.Fprintln(r.out)
	}
	fmt.Fprintf(r.out, "%d warning(s)\n", len(res.Outcomes))
}

// RenderRuns writes a table of past runs, newest first.
func (r *Renderer) RenderRuns(runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(r.out, "no recorded runs")
		return
	}

	for _, run := range runs {
		status := color.GreenString("clean")
		switch {
		case run.Halted:
			status = color.RedString("halted at %s", run.HaltedGroup)
		case len(run.Outcomes) > 0:
			status = color.YellowString("%d warning(s)", len(run.Outcomes))
		}
		fmt.Fprintf(r.out, "%s  %s  %s  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.ID[:8], run.Repo, status)
	}
}
