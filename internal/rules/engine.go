package rules

import (
	"fmt"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// Result is the outcome of one validation run.
//
// A run that halted on an error-phase failure and a run that completed with
// exactly one warning produce identically shaped outcome lists; Halted is
// the explicit discriminant between the two.
type Result struct {
	// Outcomes is the ordered list of findings: exactly one outcome when the
	// run halted, otherwise every warning in group order then in-group
	// order. Empty means clean.
	Outcomes []check.Outcome
	// Halted reports that an error validator failed and stopped the run.
	Halted bool
	// HaltedGroup names the group whose error phase failed; empty when the
	// run completed.
	HaltedGroup string
}

// Engine executes the full group protocol for one run. It is a pure
// orchestrator: it reads the registry, invokes validators, and accumulates
// outcomes. It mutates neither the registry nor the repositories, so
// concurrent runs over the same registry are safe as long as the registry
// is not being reconfigured at the same time.
type Engine struct {
	registry *Registry
	settings check.Settings
}

// NewEngine returns an engine over the given registry. The registry must be
// fully configured before the first run.
func NewEngine(registry *Registry, settings check.Settings) *Engine {
	return &Engine{registry: registry, settings: settings}
}

// Run executes every group in registration order.
//
// For each group the error sequence runs first: entries whose required
// token does not match the active token are skipped as vacuous passes; the
// first present outcome terminates the entire run, returning exactly that
// outcome. Error gates encode preconditions for everything ordered after
// them, so nothing downstream is evaluated once one fails. When a group's
// error phase is clean its warning sequence runs with the same token rule,
// and present outcomes accumulate without halting.
//
// A validator returning an error aborts the run with that error; the engine
// performs no retries and converts nothing into outcomes.
func (e *Engine) Run(submission, reference check.Repository, token string) (*Result, error) {
	req := &check.Request{
		Submission: submission,
		Reference:  reference,
		Exceptions: e.registry.Exceptions(),
		Token:      token,
		Settings:   e.settings,
	}

	result := &Result{}
	for name := range e.registry.GroupsInOrder() {
		halted, err := e.runErrorPhase(name, req, result)
		if err != nil {
			return nil, err
		}
		if halted {
			return result, nil
		}
		if err := e.runWarningPhase(name, req, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Validate is the plain caller-facing surface: the ordered outcome list
// without the halted discriminant.
func (e *Engine) Validate(submission, reference check.Repository, token string) ([]check.Outcome, error) {
	result, err := e.Run(submission, reference, token)
	if err != nil {
		return nil, err
	}
	return result.Outcomes, nil
}

// runErrorPhase runs the group's error sequence. It reports true when a
// validator produced an outcome, in which case result holds exactly that
// outcome and the run is over.
func (e *Engine) runErrorPhase(groupName string, req *check.Request, result *Result) (bool, error) {
	for _, entry := range e.registry.ErrorValidators(groupName) {
		if skipForToken(entry, req.Token) {
			continue
		}
		outcome, err := entry.Check(req)
		if err != nil {
			return false, fmt.Errorf("validator %s: %w", entry.ID, err)
		}
		if outcome != nil {
			result.Outcomes = []check.Outcome{*outcome}
			result.Halted = true
			result.HaltedGroup = groupName
			return true, nil
		}
	}
	return false, nil
}

// runWarningPhase runs the group's warning sequence, appending every
// present outcome. Warnings never halt the run.
func (e *Engine) runWarningPhase(groupName string, req *check.Request, result *Result) error {
	for _, entry := range e.registry.WarningValidators(groupName) {
		if skipForToken(entry, req.Token) {
			continue
		}
		outcome, err := entry.Check(req)
		if err != nil {
			return fmt.Errorf("validator %s: %w", entry.ID, err)
		}
		if outcome != nil {
			result.Outcomes = append(result.Outcomes, *outcome)
		}
	}
	return nil
}

// skipForToken reports whether the entry is inactive for this run. An entry
// with a required token only runs when the active token equals it; a
// skipped entry contributes no outcome in either phase.
func skipForToken(entry check.Entry, token string) bool {
	return entry.RequiredToken != "" && entry.RequiredToken != token
}
