package outline

import (
	"strconv"
	"strings"
)

// Label is a parsed outline number, e.g. 2.4.1.2 is Label{2, 4, 1, 2}.
type Label []int

// ParseLabel parses a dotted-decimal label. Components must be positive
// integers without leading zeros.
func ParseLabel(s string) (Label, error) {
	return parseLabelAt(s, -1)
}

func parseLabelAt(s string, index int) (Label, error) {
	if s == "" {
		return nil, &LabelError{Index: index, Label: s, Reason: "empty label"}
	}
	parts := strings.Split(s, ".")
	out := make(Label, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, &LabelError{Index: index, Label: s, Reason: "empty component"}
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return nil, &LabelError{Index: index, Label: s, Reason: "non-digit character in " + strconv.Quote(p)}
			}
		}
		if p[0] == '0' {
			if p == "0" {
				return nil, &LabelError{Index: index, Label: s, Reason: "component must be positive"}
			}
			return nil, &LabelError{Index: index, Label: s, Reason: "leading zero in " + strconv.Quote(p)}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, &LabelError{Index: index, Label: s, Reason: "component out of range"}
		}
		out = append(out, n)
	}
	return out, nil
}

// String renders the label in dotted form.
func (l Label) String() string {
	var sb strings.Builder
	for i, n := range l {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// Depth is the number of components.
func (l Label) Depth() int { return len(l) }

// Compare orders labels componentwise. A strict prefix sorts before its
// extensions, which is the depth-first document order.
func (l Label) Compare(other Label) int {
	for i := 0; i < len(l) && i < len(other); i++ {
		switch {
		case l[i] < other[i]:
			return -1
		case l[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(l) < len(other):
		return -1
	case len(l) > len(other):
		return 1
	}
	return 0
}

// IsAncestorOf reports whether l is a strict prefix of other.
func (l Label) IsAncestorOf(other Label) bool {
	if len(l) >= len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

func (l Label) clone() Label {
	out := make(Label, len(l))
	copy(out, l)
	return out
}
