package outline

import (
	"cmp"
	"slices"
)

// Compact renames sibling indices at every level to 1..k, keeping their
// relative order. Tree shape is unchanged.
func (n *Node) Compact() {
	if n == nil || len(n.children) == 0 {
		return
	}
	slices.SortStableFunc(n.children, func(a, b *Child) int {
		return cmp.Compare(a.Index, b.Index)
	})
	for i, c := range n.children {
		c.Index = i + 1
		c.Node.Compact()
	}
}
