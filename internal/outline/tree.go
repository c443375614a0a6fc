package outline

// Kind tags what a sibling slot holds.
type Kind int

const (
	// Leaf is a label with no deeper descendants.
	Leaf Kind = iota + 1
	// Branch only groups descendants; its own label was deleted.
	Branch
	// Both is a label that also has descendants, e.g. 2.4 next to 2.4.2.
	Both
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	case Both:
		return "both"
	}
	return "unknown"
}

// Child is one sibling slot of a Node.
type Child struct {
	Index    int   // Sibling index, positive.
	Terminal bool  // The path up to this slot is itself a label.
	Node     *Node // Next depth, nil when there are no descendants.
}

// Kind reports which variant the slot is.
func (c *Child) Kind() Kind {
	switch {
	case c.Terminal && c.Node != nil:
		return Both
	case c.Node != nil:
		return Branch
	default:
		return Leaf
	}
}

// Node is one level of the outline: its children ordered by ascending index.
type Node struct {
	children []*Child
}

// Children returns the slots in ascending index order. The slice is shared.
func (n *Node) Children() []*Child {
	if n == nil {
		return nil
	}
	return n.children
}

// Len is the number of sibling slots.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Indices returns the sibling indices in order.
func (n *Node) Indices() []int {
	out := make([]int, 0, n.Len())
	for _, c := range n.Children() {
		out = append(out, c.Index)
	}
	return out
}

// Child looks up the slot with the given index.
func (n *Node) Child(index int) *Child {
	for _, c := range n.Children() {
		if c.Index == index {
			return c
		}
	}
	return nil
}
