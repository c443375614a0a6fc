package parser

import (
	"strings"
	"testing"
)

func TestTextParser_NumberedLines(t *testing.T) {
	input := "Contract\n\n2.1 Parties\nThe parties agree.\n2.4 Term\n  2.4.2 Renewal\n3. Fees\n"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "contract.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "contract" {
		t.Errorf("expected title %q, got %q", "contract", tree.Title)
	}
	if len(tree.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(tree.Sections))
	}

	want := []struct {
		number, title string
		line          int
	}{
		{"2.1", "Parties", 3},
		{"2.4", "Term", 5},
		{"2.4.2", "Renewal", 6},
		{"3", "Fees", 7},
	}
	for i, w := range want {
		s := tree.Sections[i]
		if s.Number != w.number || s.Title != w.title || s.Line != w.line {
			t.Errorf("section[%d]: expected %+v, got %+v", i, w, s)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tree.Title)
	}
	if len(tree.Sections) != 0 {
		t.Errorf("expected 0 sections for empty input, got %d", len(tree.Sections))
	}
}

func TestTextParser_IgnoresNonOutlineNumbers(t *testing.T) {
	input := "2019 was a good year\n0.5 litres\n1.02 Bad\n12345 items\nv2.1 release\n1.2024 Budget\n"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "noise.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Sections) != 0 {
		t.Errorf("expected no sections, got %+v", tree.Sections)
	}
}

func TestTextParser_YearLedLineIsProse(t *testing.T) {
	input := "1 Intro\n2024 revenue grew\n3 Scope\n"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "report.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := strings.Join(tree.Numbers(), ",")
	if got != "1,3" {
		t.Fatalf("expected numbers 1,3, got %s", got)
	}
	if tree.Sections[1].Line != 3 {
		t.Errorf("expected line 3, got %d", tree.Sections[1].Line)
	}
}

func TestTextParser_RecordsColumn(t *testing.T) {
	input := "2 A\n   2.1 B\n"
	tree, err := (&TextParser{}).Parse(strings.NewReader(input), "c.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Sections[0].Col != 0 || tree.Sections[1].Col != 3 {
		t.Errorf("expected columns 0 and 3, got %d and %d", tree.Sections[0].Col, tree.Sections[1].Col)
	}
}

func TestMatchNumbered(t *testing.T) {
	tests := []struct {
		in     string
		number string
		title  string
		col    int
		ok     bool
	}{
		{"2.4.1 Scope", "2.4.1", "Scope", 0, true},
		{"2.4. Scope", "2.4", "Scope", 0, true},
		{"  7  Annex  ", "7", "Annex", 2, true},
		{"3.1", "3.1", "", 0, true},
		{"999.12 Max", "999.12", "Max", 0, true},
		{"2024 revenue", "", "", 0, false},
		{"2.4.Scope", "", "", 0, false},
		{"Scope 2.4", "", "", 0, false},
		{"", "", "", 0, false},
	}
	for _, tt := range tests {
		number, title, col, ok := matchNumbered(tt.in)
		if ok != tt.ok || number != tt.number || title != tt.title || col != tt.col {
			t.Errorf("matchNumbered(%q) = (%q, %q, %d, %v), want (%q, %q, %d, %v)",
				tt.in, number, title, col, ok, tt.number, tt.title, tt.col, tt.ok)
		}
	}
}
