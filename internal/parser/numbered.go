package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outlinefix/internal/doctree"
)

// numberedRe matches text that starts with an outline number, optionally
// followed by a trailing dot and the section title. Components are limited to
// three digits so years (2024) and amounts are not taken for section numbers.
var numberedRe = regexp.MustCompile(`^\s*([1-9]\d{0,2}(?:\.[1-9]\d{0,2})*)\.?(?:\s+(.*?))?\s*$`)

// matchNumbered splits "2.4.1 Scope" into ("2.4.1", "Scope"). col is the
// byte offset of the number within text.
func matchNumbered(text string) (number, title string, col int, ok bool) {
	m := numberedRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", "", 0, false
	}
	number = text[m[2]:m[3]]
	if m[4] >= 0 {
		title = strings.TrimSpace(text[m[4]:m[5]])
	}
	return number, title, m[2], true
}

// addSection appends a section when text is numbered. offset is where text
// starts on its source line.
func addSection(tree *doctree.DocTree, text string, line, offset int) {
	if number, title, col, ok := matchNumbered(text); ok {
		tree.Sections = append(tree.Sections, doctree.Section{
			Number: number,
			Title:  title,
			Line:   line,
			Col:    offset + col,
		})
	}
}
