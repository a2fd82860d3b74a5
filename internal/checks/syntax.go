package checks

import (
	"fmt"
	"strings"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// NoSyntaxErrors fails with "syntax_error" naming the first source file
// that could not be parsed or whose parse tree contains error nodes.
func NoSyntaxErrors(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if u.Root == nil || u.Root.HasError() {
			return check.Failf("syntax_error", u.Path), nil
		}
	}
	return nil, nil
}

// IndentsAreFourSpaces warns with "indent_not_four_spaces" at the first
// line indented with tabs or with a space count that is not a multiple of
// the configured tab size.
func IndentsAreFourSpaces(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	tabSize := req.Settings.TabSize
	for _, u := range units {
		for i, srcLine := range strings.Split(string(u.Source), "\n") {
			if strings.TrimSpace(srcLine) == "" {
				continue
			}
			if strings.HasPrefix(srcLine, "\t") {
				return check.Failf("indent_not_four_spaces", fmt.Sprintf("%s:%d", u.Path, i+1)), nil
			}
			indent := len(srcLine) - len(strings.TrimLeft(srcLine, " "))
			if indent%tabSize != 0 {
				return check.Failf("indent_not_four_spaces", fmt.Sprintf("%s:%d", u.Path, i+1)), nil
			}
		}
	}
	return nil, nil
}

// pythonBuiltins are the names most commonly shadowed by beginners.
var pythonBuiltins = check.NewSet(
	"list", "dict", "set", "str", "int", "float", "bool", "bytes",
	"input", "print", "len", "sum", "max", "min", "type", "id",
	"object", "range", "map", "filter", "zip", "open", "file",
	"sorted", "reversed", "enumerate", "format", "hash", "iter", "next",
)

// NoBuiltinShadowing warns with "shadows_builtin" naming the first bound
// identifier that shadows a Python builtin.
func NoBuiltinShadowing(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		for _, d := range definedNames(u) {
			if pythonBuiltins.Contains(d.name) && !req.Exceptions.Exempt(IDNoBuiltinShadowing, d.name) {
				return check.Failf("shadows_builtin", d.name), nil
			}
		}
	}
	return nil, nil
}
