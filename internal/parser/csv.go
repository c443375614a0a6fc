package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/outlinefix/internal/doctree"
)

// CSVParser handles CSV files whose first column holds the section number
// and second column, if any, the title.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".csv"),
	}

	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		number, _, _, ok := matchNumbered(rec[0])
		if !ok || strings.TrimSuffix(strings.TrimSpace(rec[0]), ".") != number {
			// Header rows and free text in the first column are skipped.
			continue
		}
		var title string
		if len(rec) > 1 {
			title = strings.TrimSpace(rec[1])
		}
		tree.Sections = append(tree.Sections, doctree.Section{
			Number: number,
			Title:  title,
			Line:   i + 1,
		})
	}

	return tree, nil
}
