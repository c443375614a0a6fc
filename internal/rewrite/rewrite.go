// Package rewrite applies renumbered section numbers back onto line-based
// documents.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/dgallion1/outlinefix/internal/doctree"
	"github.com/dgallion1/outlinefix/internal/outline"
)

// Lines replaces the number of each section, at its recorded line and column,
// with its renumbered value. sections and changes must be parallel, as
// produced by outline.Map(tree.Numbers()).
func Lines(src string, sections []doctree.Section, changes []outline.Change) (string, error) {
	if len(sections) != len(changes) {
		return "", fmt.Errorf("rewrite: %d sections but %d changes", len(sections), len(changes))
	}
	lines := strings.Split(src, "\n")
	for i, s := range sections {
		c := changes[i]
		if c.Old != s.Number {
			return "", fmt.Errorf("rewrite: change %d is for %q, section is %q", i, c.Old, s.Number)
		}
		if !c.Changed() {
			continue
		}
		if s.Line < 1 || s.Line > len(lines) {
			return "", fmt.Errorf("rewrite: section %q has line %d outside document", s.Number, s.Line)
		}
		line := lines[s.Line-1]
		at, end := s.Col, s.Col+len(s.Number)
		if at < 0 || end > len(line) || line[at:end] != s.Number {
			return "", fmt.Errorf("rewrite: number %q not found at line %d column %d", s.Number, s.Line, s.Col+1)
		}
		lines[s.Line-1] = line[:at] + c.New + line[end:]
	}
	return strings.Join(lines, "\n"), nil
}
