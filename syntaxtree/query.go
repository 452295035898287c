package syntaxtree

import (
	"iter"
	"strings"
)

// All iterates root and all of its descendants depth-first in document order.
func All(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if root == nil {
			return
		}
		walk(root, yield)
	}
}

// Walk calls fn for root and every descendant in pre-order. Returning false
// from fn stops the traversal.
func Walk(root Node, fn func(Node) bool) {
	if root == nil {
		return
	}
	walk(root, fn)
}

func walk(node Node, yield func(Node) bool) bool {
	if !yield(node) {
		return false
	}
	for _, child := range node.Children() {
		if !walk(child, yield) {
			return false
		}
	}

	return true
}

// FindAllDescendants returns every node in root's subtree (root included)
// whose rule is rule, in document order. Matches nested inside other matches
// are returned too.
func FindAllDescendants(root Node, rule RuleName) []Node {
	result := []Node{}
	for node := range All(root) {
		if node.Rule() == rule {
			result = append(result, node)
		}
	}

	return result
}

// FindFirstChild returns the first node of node's subtree (node included)
// in document order whose rule is rule.
func FindFirstChild(node Node, rule RuleName) (Node, bool) {
	for n := range All(node) {
		if n.Rule() == rule {
			return n, true
		}
	}

	return nil, false
}

// Dump renders the tree with one node per line, indented by depth.
func Dump(root Node) string {
	var sb strings.Builder
	dump(&sb, root, 0)

	return sb.String()
}

func dump(sb *strings.Builder, node Node, depth int) {
	if node == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(node.Rule().String())
	if node.Rule() == TERMINAL || len(node.Children()) == 0 {
		sb.WriteString(" ")
		sb.WriteString(quote(node.Text()))
	}
	sb.WriteString("\n")
	for _, child := range node.Children() {
		dump(sb, child, depth+1)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "\n", `\n`) + "'"
}
