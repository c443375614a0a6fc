package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dgallion1/outlinefix/internal/outline"
	"github.com/dgallion1/outlinefix/internal/parser"
	"github.com/dgallion1/outlinefix/internal/rewrite"
	"github.com/spf13/cobra"
)

func docCmd() *cobra.Command {
	var asJSON bool
	var write bool
	var toStdout bool
	var noPdftotext bool

	cmd := &cobra.Command{
		Use:   "doc <file>",
		Short: "Renumber the numbered sections of a document",
		Long: `Extract numbered sections from a .txt, .md, .csv, .html, .pdf or .docx
file and print how each number changes. Text and Markdown files can be
rewritten with --write (in place) or --stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			name := filepath.Base(path)
			if (write || toStdout) && !parser.IsRewritable(name) {
				return fmt.Errorf("cannot rewrite %s: only text and markdown files are supported", name)
			}

			p, err := parser.ForFile(name, parser.Options{PDFFallbackPdftotext: !noPdftotext})
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			tree, err := p.Parse(bytes.NewReader(data), name)
			if err != nil {
				return fmt.Errorf("parse %s: %w", name, err)
			}
			slog.Debug("parsed document", "file", name, "sections", len(tree.Sections))

			changes, err := outline.Map(tree.Numbers())
			if err != nil {
				return fmt.Errorf("renumber %s: %w", name, err)
			}

			if write || toStdout {
				out, err := rewrite.Lines(string(data), tree.Sections, changes)
				if err != nil {
					return err
				}
				if toStdout {
					_, err = fmt.Fprint(cmd.OutOrStdout(), out)
					return err
				}
				info, err := os.Stat(path)
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
					return err
				}
				slog.Info("rewrote document", "file", path, "changed", countChanged(changes))
				return nil
			}

			if asJSON {
				type row struct {
					outline.Change
					Title string `json:"title,omitempty"`
					Line  int    `json:"line,omitempty"`
				}
				rows := make([]row, len(changes))
				for i, c := range changes {
					rows[i] = row{Change: c, Title: tree.Sections[i].Title, Line: tree.Sections[i].Line}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, c := range changes {
				mark := " "
				if c.Changed() {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, c.Old, c.New, tree.Sections[i].Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print changes as JSON")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the rewritten file to stdout")
	cmd.Flags().BoolVar(&noPdftotext, "no-pdftotext", false, "do not fall back to pdftotext for PDFs")
	cmd.MarkFlagsMutuallyExclusive("write", "stdout", "json")
	return cmd
}

func countChanged(changes []outline.Change) int {
	n := 0
	for _, c := range changes {
		if c.Changed() {
			n++
		}
	}
	return n
}
