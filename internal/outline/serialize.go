package outline

import "iter"

// All yields every label of the tree in depth-first order. A slot that is
// both a label and a parent yields itself before its descendants. Each yielded
// Label is a fresh slice owned by the caller.
func (n *Node) All() iter.Seq[Label] {
	return func(yield func(Label) bool) {
		n.walk(nil, yield)
	}
}

func (n *Node) walk(prefix Label, yield func(Label) bool) bool {
	for _, c := range n.Children() {
		path := append(prefix[:len(prefix):len(prefix)], c.Index)
		if c.Terminal && !yield(path.clone()) {
			return false
		}
		if c.Node != nil && !c.Node.walk(path, yield) {
			return false
		}
	}
	return true
}

// Labels materializes All as dotted strings.
func (n *Node) Labels() []string {
	out := []string{}
	for l := range n.All() {
		out = append(out, l.String())
	}
	return out
}
