package parser

import (
	"bytes"
	"strings"
)

// String re-prints the node as source text. Parse(Tokenize(n.String()))
// yields a tree Equal to n.

func (node *Leaf) String() string { return node.Atom }

func (node *Group) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, child := range node.Children {
		if i != 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(child.String())
	}
	buf.WriteString(")")
	return buf.String()
}

// Format prints a sequence of top-level nodes, one per line.
func Format(nodes []Node) string {
	lines := []string{}
	for _, node := range nodes {
		lines = append(lines, node.String())
	}
	return strings.Join(lines, "\n")
}
