package parser

//go:generate stringer -type=NodeType

type NodeType uint8

const (
	_ = NodeType(iota)
	LEAF
	GROUP
)

// Node is one s-expression: either a single atom (*Leaf) or
// everything between a matched pair of parens (*Group).
type Node interface {
	String() string
	Type() NodeType
	node()
}

type Leaf struct {
	Atom string
}

type Group struct {
	Children []Node
}

func newLeaf(atom string) *Leaf        { return &Leaf{Atom: atom} }
func newGroup(children []Node) *Group { return &Group{Children: children} }

func (node *Leaf) Type() NodeType  { return LEAF }
func (node *Group) Type() NodeType { return GROUP }

func (node *Leaf) node()  {}
func (node *Group) node() {}

// Equal reports whether a and b are structurally the same tree.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Leaf:
		b, ok := b.(*Leaf)
		return ok && a.Atom == b.Atom
	case *Group:
		b, ok := b.(*Group)
		if !ok || len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
