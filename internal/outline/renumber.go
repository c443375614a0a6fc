// Package outline renumbers dotted-decimal outline labels so that sibling
// numbers are dense again after entries were deleted.
package outline

import "fmt"

// Renumber compacts a depth-first list of labels. The output has the same
// length and order as the input; each label keeps its depth and its ancestors.
// A nil list is rejected with ErrInvalidInput; an empty list yields an empty
// list.
func Renumber(labels []string) ([]string, error) {
	root, err := Parse(labels)
	if err != nil {
		return nil, err
	}
	root.Compact()
	out := root.Labels()
	if len(out) != len(labels) {
		return nil, fmt.Errorf("%w: renumbered %d of %d labels", ErrInvalidInput, len(out), len(labels))
	}
	return out, nil
}

// Change pairs an input label with its renumbered value.
type Change struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// Changed reports whether renumbering altered the label.
func (c Change) Changed() bool { return c.Old != c.New }

// Map renumbers labels and returns the old/new pair for every position.
func Map(labels []string) ([]Change, error) {
	renumbered, err := Renumber(labels)
	if err != nil {
		return nil, err
	}
	changes := make([]Change, len(labels))
	for i := range labels {
		changes[i] = Change{Old: labels[i], New: renumbered[i]}
	}
	return changes, nil
}
