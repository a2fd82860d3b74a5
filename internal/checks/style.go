package checks

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// NoTrailingSemicolons fails with "semicolon" at the first source line that
// ends with a semicolon. Comment lines are skipped.
func NoTrailingSemicolons(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		for i, srcLine := range strings.Split(string(u.Source), "\n") {
			trimmed := strings.TrimSpace(srcLine)
			if strings.HasPrefix(trimmed, "#") {
				continue
			}
			if strings.HasSuffix(trimmed, ";") {
				return check.Failf("semicolon", fmt.Sprintf("%s:%d", u.Path, i+1)), nil
			}
		}
	}
	return nil, nil
}

// NoLongLines warns with "line_too_long" at the first source line longer
// than the configured maximum.
func NoLongLines(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		for i, srcLine := range strings.Split(string(u.Source), "\n") {
			if len([]rune(srcLine)) > req.Settings.MaxLineLength {
				return check.Failf("line_too_long", fmt.Sprintf("%s:%d", u.Path, i+1)), nil
			}
		}
	}
	return nil, nil
}

// NoExitCalls fails with "exit_calls_in_functions" naming the first
// function that calls exit() or sys.exit(). Functions in this validator's
// whitelist (main) may exit.
func NoExitCalls(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		var offender string
		walk(u.Root, func(n *sitter.Node) {
			if offender != "" || n.Type() != "call" {
				return
			}
			callee := text(n.ChildByFieldName("function"), u.Source)
			if callee != "exit" && callee != "sys.exit" {
				return
			}
			fn := enclosingFunction(n, u.Source)
			if fn == "" || req.Exceptions.Exempt(IDNoExitCalls, fn) {
				return
			}
			offender = fn
		})
		if offender != "" {
			return check.Failf("exit_calls_in_functions", offender), nil
		}
	}
	return nil, nil
}

// NoBuiltinMinMax fails with "builtin_min_max_used" at the first call to
// the min or max builtin. It is registered behind the min_max_challenge
// token: exercises that ask for a hand-written minimum search enable it
// explicitly, everyone else never runs it.
func NoBuiltinMinMax(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		var offender *sitter.Node
		walk(u.Root, func(n *sitter.Node) {
			if offender != nil || n.Type() != "call" {
				return
			}
			callee := text(n.ChildByFieldName("function"), u.Source)
			if callee == "min" || callee == "max" {
				offender = n
			}
		})
		if offender != nil {
			return check.Failf("builtin_min_max_used", fmt.Sprintf("%s:%d", u.Path, line(offender))), nil
		}
	}
	return nil, nil
}
