package checks

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// NoStarImports fails with "star_import" naming the first source file with
// a `from x import *` statement.
func NoStarImports(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		var found bool
		walk(u.Root, func(n *sitter.Node) {
			if n.Type() == "wildcard_import" {
				found = true
			}
		})
		if found {
			return check.Failf("star_import", u.Path), nil
		}
	}
	return nil, nil
}

// NoLocalImports fails with "local_import" naming the first source file
// that imports inside a function body. Files matching a path fragment in
// this validator's exception list (e.g. manage.py) are skipped.
func NoLocalImports(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if pathExempt(req.Exceptions, IDNoLocalImports, u.Path) {
			continue
		}
		var found bool
		walk(u.Root, func(n *sitter.Node) {
			switch n.Type() {
			case "import_statement", "import_from_statement":
				if enclosingFunction(n, u.Source) != "" {
					found = true
				}
			}
		})
		if found {
			return check.Failf("local_import", u.Path), nil
		}
	}
	return nil, nil
}
