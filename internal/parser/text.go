package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/outlinefix/internal/doctree"
)

// TextParser handles plain text files, one candidate section per line.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".txt"),
	}

	line := 0
	for scanner.Scan() {
		line++
		addSection(tree, scanner.Text(), line, 0)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tree, nil
}
