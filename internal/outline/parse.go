package outline

import "fmt"

// Parse builds the outline tree from dotted labels. Labels must be in strictly
// increasing depth-first order, so every group sharing a prefix is contiguous.
func Parse(labels []string) (*Node, error) {
	if labels == nil {
		return nil, fmt.Errorf("%w: label list is nil", ErrInvalidInput)
	}
	parsed := make([]Label, len(labels))
	for i, s := range labels {
		l, err := parseLabelAt(s, i)
		if err != nil {
			return nil, err
		}
		if i > 0 && parsed[i-1].Compare(l) >= 0 {
			return nil, fmt.Errorf("%w: label %q at index %d does not follow %q in depth-first order",
				ErrInvalidInput, s, i, labels[i-1])
		}
		parsed[i] = l
	}
	return build(parsed), nil
}

// build partitions labels into runs sharing the first component and recurses
// on the remainders. A remainder of length zero marks the slot terminal.
func build(labels []Label) *Node {
	n := &Node{}
	for start := 0; start < len(labels); {
		head := labels[start][0]
		end := start
		for end < len(labels) && labels[end][0] == head {
			end++
		}

		c := &Child{Index: head}
		var rest []Label
		for _, l := range labels[start:end] {
			if len(l) == 1 {
				c.Terminal = true
				continue
			}
			rest = append(rest, l[1:])
		}
		if len(rest) > 0 {
			c.Node = build(rest)
		}
		n.children = append(n.children, c)
		start = end
	}
	return n
}
