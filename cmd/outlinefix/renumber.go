package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dgallion1/outlinefix/internal/outline"
	"github.com/spf13/cobra"
)

func renumberCmd() *cobra.Command {
	var asJSON bool
	var showTree bool

	cmd := &cobra.Command{
		Use:   "renumber [labels...]",
		Short: "Renumber labels given as arguments or on stdin, one per line",
		Example: `  outlinefix renumber 2.1 2.2.1 2.2.3 2.4
  printf '3\n3.2\n3.4\n' | outlinefix renumber --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := args
			if len(labels) == 0 {
				var err error
				labels, err = readLabels(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read labels: %w", err)
				}
			}
			slog.Debug("renumbering", "labels", len(labels))

			if showTree {
				tree, err := outline.Parse(labels)
				if err != nil {
					return err
				}
				tree.Compact()
				if err := outline.Dump(cmd.ErrOrStderr(), tree); err != nil {
					return err
				}
			}

			changes, err := outline.Map(labels)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(changes)
			}
			for _, c := range changes {
				fmt.Fprintln(out, c.New)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print old/new pairs as JSON")
	cmd.Flags().BoolVar(&showTree, "tree", false, "dump the compacted tree to stderr")
	return cmd
}

// readLabels reads one label per line, skipping blank lines.
func readLabels(r io.Reader) ([]string, error) {
	labels := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			labels = append(labels, l)
		}
	}
	return labels, sc.Err()
}
