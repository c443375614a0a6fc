package doctree

// DocTree is the numbered outline found in a parsed document.
type DocTree struct {
	Title    string    // Document title (from metadata or filename)
	Sections []Section // Numbered paragraphs in document order
}

// Section is a heading or paragraph whose text starts with an outline number.
type Section struct {
	Number string `json:"number"`         // Dotted number as written, e.g. "2.4.1"
	Title  string `json:"title"`          // Text after the number
	Line   int    `json:"line,omitempty"` // Source line, page (PDF) or paragraph (DOCX); 0 if N/A
	Col    int    `json:"col,omitempty"`  // Byte offset of Number on its line (text and Markdown)
}

// Numbers returns the section numbers in document order.
func (t *DocTree) Numbers() []string {
	out := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		out = append(out, s.Number)
	}
	return out
}
