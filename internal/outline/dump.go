package outline

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the sibling indices of the tree, one per line, indented by
// depth. Slots that are labels themselves are marked with '*'.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) error {
	for _, c := range n.Children() {
		mark := ""
		if c.Terminal {
			mark = " *"
		}
		if _, err := fmt.Fprintf(w, "%s%d%s\n", strings.Repeat("\t", depth), c.Index, mark); err != nil {
			return err
		}
		if err := dump(w, c.Node, depth+1); err != nil {
			return err
		}
	}
	return nil
}
