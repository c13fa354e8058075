package component

import "strings"

// Walk visits node and its descendants depth first. Returning false from visit
// skips the subtree below the current node. Tooltip content is visited before
// the tooltip's children.
func Walk(node Node, visit func(Node) bool) {
	if node == nil || visit == nil {
		return
	}
	if !visit(node) {
		return
	}
	if tip, ok := node.(*Tooltip); ok && tip.TipContent != nil {
		Walk(tip.TipContent, visit)
	}
	for _, child := range node.Children() {
		Walk(child, visit)
	}
}

// FindAll returns every node of the given kind under root, root included.
func FindAll(root Node, kind Kind) []Node {
	var out []Node
	Walk(root, func(n Node) bool {
		if n.Kind() == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

// PlainText concatenates the literal text found under node.
func PlainText(node Node) string {
	var b strings.Builder
	Walk(node, func(n Node) bool {
		if s, ok := n.(String); ok {
			b.WriteString(string(s))
		}
		return true
	})
	return b.String()
}

// Count returns the number of non-literal nodes under root, root included.
func Count(root Node) int {
	total := 0
	Walk(root, func(n Node) bool {
		if n.Kind() != KindString {
			total++
		}
		return true
	})
	return total
}
