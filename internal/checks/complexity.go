package checks

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// decisionNodes are the node types that add a branch to a function's
// control flow graph.
var decisionNodes = check.NewSet(
	"if_statement",
	"elif_clause",
	"for_statement",
	"while_statement",
	"except_clause",
	"boolean_operator",
	"conditional_expression",
	"case_clause",
	"assert_statement",
)

// McCabeComplexityOK fails with "too_difficult_by_mccabe" naming the first
// function whose cyclomatic complexity reaches the configured maximum.
func McCabeComplexityOK(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		var offender string
		walk(u.Root, func(n *sitter.Node) {
			if offender != "" || n.Type() != "function_definition" {
				return
			}
			if complexity(n) >= req.Settings.MaxComplexity {
				offender = text(n.ChildByFieldName("name"), u.Source)
			}
		})
		if offender != "" {
			return check.Failf("too_difficult_by_mccabe", offender), nil
		}
	}
	return nil, nil
}

// complexity computes 1 plus the number of decision points in the
// function's subtree, nested definitions excluded (they are measured on
// their own when the walk reaches them).
func complexity(fn *sitter.Node) int {
	count := 1
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if decisionNodes.Contains(n.Type()) {
			count++
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child.Type() == "function_definition" {
				continue
			}
			visit(child)
		}
	}
	body := fn.ChildByFieldName("body")
	if body == nil {
		return count
	}
	visit(body)
	return count
}
