// Package checks implements the default validator battery: commit gates,
// readme and encoding gates, and Python source checks over tree-sitter
// parse trees. Every validator follows the check.Validator contract and is
// registered through DefaultRegistry.
package checks

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// walk visits every node of the tree in preorder.
func walk(n *sitter.Node, visit func(*sitter.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), visit)
	}
}

// text returns the source text a node spans.
func text(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return string(source[n.StartByte():n.EndByte()])
}

// line returns the 1-based line a node starts on.
func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// enclosingFunction returns the name of the nearest function_definition
// ancestor, or "" when the node is at module level.
func enclosingFunction(n *sitter.Node, source []byte) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "function_definition" {
			return text(p.ChildByFieldName("name"), source)
		}
	}
	return ""
}

// definedName is an identifier the source binds: an assignment target, a
// function name, or a parameter.
type definedName struct {
	name string
	node *sitter.Node
}

// definedNames collects bound identifiers from a unit in source order.
func definedNames(u check.Unit) []definedName {
	var names []definedName
	add := func(n *sitter.Node) {
		if n != nil && n.Type() == "identifier" {
			names = append(names, definedName{name: text(n, u.Source), node: n})
		}
	}

	walk(u.Root, func(n *sitter.Node) {
		switch n.Type() {
		case "assignment", "augmented_assignment":
			left := n.ChildByFieldName("left")
			if left == nil {
				return
			}
			if left.Type() == "identifier" {
				add(left)
				return
			}
			// Tuple unpacking: a, b = ...
			if left.Type() == "pattern_list" || left.Type() == "tuple_pattern" {
				for i := 0; i < int(left.ChildCount()); i++ {
					add(left.Child(i))
				}
			}
		case "function_definition":
			add(n.ChildByFieldName("name"))
		case "parameters":
			for i := 0; i < int(n.ChildCount()); i++ {
				child := n.Child(i)
				switch child.Type() {
				case "identifier":
					add(child)
				case "default_parameter", "typed_parameter", "typed_default_parameter":
					add(child.ChildByFieldName("name"))
					if child.ChildByFieldName("name") == nil && child.ChildCount() > 0 {
						add(child.Child(0))
					}
				}
			}
		}
	})
	return names
}

// pathExempt reports whether any exception value for the validator occurs
// as a substring of the path. Path exemptions match on fragments like
// "/migrations/" or "manage.py".
func pathExempt(ex check.ExceptionLists, id check.ID, path string) bool {
	for v := range ex[id] {
		if strings.Contains(path, v) {
			return true
		}
	}
	return false
}
