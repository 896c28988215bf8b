package main

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/ontology"
	"github.com/c360studio/ontograph/termid"
)

func newStatsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print ontology summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := app.loadOntology()
			if err != nil {
				return err
			}

			graph := ont.Hierarchy()
			root, _ := ont.TermAt(graph.Root())

			leaves := 0
			for pos := uint32(0); int(pos) < graph.NodeCount(); pos++ {
				if graph.IsLeaf(pos) {
					leaves++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Terms:   %d\n", ont.Len())
			fmt.Fprintf(out, "Leaves:  %d\n", leaves)
			fmt.Fprintf(out, "Root:    %s (%s)\n", root.ID(), root.Name())
			if version, ok := ont.Version(); ok {
				fmt.Fprintf(out, "Version: %s\n", version)
			}
			return nil
		},
	}
}

func newTermCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "term <id>",
		Short: "Show a term by primary or alternate identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, id, err := loadAndParse(app, args[0])
			if err != nil {
				return err
			}

			term, ok := ont.TermByID(id)
			if !ok {
				return fmt.Errorf("term not found: %s", id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:    %s\n", term.ID())
			fmt.Fprintf(out, "Name:  %s\n", term.Name())
			if !id.Equal(term.ID()) {
				fmt.Fprintf(out, "       (resolved from alternate %s)\n", id)
			}
			if len(term.AltIDs()) > 0 {
				alts := make([]string, 0, len(term.AltIDs()))
				for _, alt := range term.AltIDs() {
					alts = append(alts, alt.String())
				}
				fmt.Fprintf(out, "Alt:   %s\n", strings.Join(alts, ", "))
			}
			if full, ok := term.(ontology.Term); ok {
				if def := full.Definition(); def != "" {
					fmt.Fprintf(out, "Def:   %s\n", def)
				}
				for _, syn := range full.Synonyms() {
					fmt.Fprintf(out, "Syn:   %s (%s)\n", syn.Name, syn.Category)
				}
			}
			for parent := range ont.Parents(term.ID()) {
				fmt.Fprintf(out, "Is-a:  %s\n", describe(ont, parent))
			}
			return nil
		},
	}
}

func newChildrenCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "children <id>",
		Short: "List the direct children of a term",
		Args:  cobra.ExactArgs(1),
		RunE:  listCmd(app, (*ontology.Ontology).Children),
	}
}

func newParentsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "parents <id>",
		Short: "List the direct parents of a term",
		Args:  cobra.ExactArgs(1),
		RunE:  listCmd(app, (*ontology.Ontology).Parents),
	}
}

func newAncestorsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors <id>",
		Short: "List all transitive parents of a term",
		Args:  cobra.ExactArgs(1),
		RunE:  listCmd(app, (*ontology.Ontology).Ancestors),
	}
}

func newDescendantsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "descendants <id>",
		Short: "List all transitive children of a term",
		Args:  cobra.ExactArgs(1),
		RunE:  listCmd(app, (*ontology.Ontology).Descendants),
	}
}

// listCmd builds a RunE that resolves the argument and prints each related
// term on its own line.
func listCmd(app *appContext, related func(*ontology.Ontology, termid.TermID) iter.Seq[termid.TermID]) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ont, id, err := loadAndParse(app, args[0])
		if err != nil {
			return err
		}
		if _, ok := ont.IndexOf(id); !ok {
			return fmt.Errorf("term not found: %s", id)
		}

		for rel := range related(ont, id) {
			fmt.Fprintln(cmd.OutOrStdout(), describe(ont, rel))
		}
		return nil
	}
}

func newPathCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the shortest is_a path between two terms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, from, err := loadAndParse(app, args[0])
			if err != nil {
				return err
			}
			to, err := termid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}

			fromPos, ok := ont.IndexOf(from)
			if !ok {
				return fmt.Errorf("term not found: %s", from)
			}
			toPos, ok := ont.IndexOf(to)
			if !ok {
				return fmt.Errorf("term not found: %s", to)
			}

			path, ok := shortestPath(ont, fromPos, toPos)
			if !ok {
				return fmt.Errorf("no is_a path between %s and %s", from, to)
			}
			for _, pos := range path {
				term, _ := ont.TermAt(pos)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", term.ID(), term.Name())
			}
			return nil
		},
	}
}

// shortestPath finds the shortest chain of is_a edges from one position to
// the other, trying the upward direction first and falling back to the
// reverse when the target is a descendant rather than an ancestor.
func shortestPath(ont *ontology.Ontology, from, to uint32) ([]uint32, bool) {
	if path, ok := pathUpward(ont, from, to); ok {
		return path, true
	}
	if path, ok := pathUpward(ont, to, from); ok {
		slices.Reverse(path)
		return path, true
	}
	return nil, false
}

// pathUpward runs a breadth-first search along parent edges from start and
// reconstructs the hop sequence once target is reached.
func pathUpward(ont *ontology.Ontology, start, target uint32) ([]uint32, bool) {
	if start == target {
		return []uint32{start}, true
	}

	graph := ont.Hierarchy()
	prev := map[uint32]uint32{start: start}
	queue := []uint32{start}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		for _, parent := range graph.ParentsOf(pos) {
			if _, seen := prev[parent]; seen {
				continue
			}
			prev[parent] = pos
			if parent == target {
				path := []uint32{target}
				for at := pos; at != start; at = prev[at] {
					path = append(path, at)
				}
				path = append(path, start)
				slices.Reverse(path)
				return path, true
			}
			queue = append(queue, parent)
		}
	}
	return nil, false
}

// loadAndParse loads the ontology and parses the identifier argument.
func loadAndParse(app *appContext, arg string) (*ontology.Ontology, termid.TermID, error) {
	ont, err := app.loadOntology()
	if err != nil {
		return nil, termid.TermID{}, err
	}
	id, err := termid.Parse(arg)
	if err != nil {
		return nil, termid.TermID{}, fmt.Errorf("parse %q: %w", arg, err)
	}
	return ont, id, nil
}

// describe renders a term as "ID  name" for listing output.
func describe(ont *ontology.Ontology, id termid.TermID) string {
	term, ok := ont.TermByID(id)
	if !ok {
		return id.String()
	}
	return fmt.Sprintf("%s\t%s", term.ID(), term.Name())
}
