// Package main provides the ontograph binary entry point.
// Ontograph loads obographs JSON vocabularies into an in-memory hierarchy
// and answers ancestry queries over them from the command line.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontograph"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	app := &appContext{}

	cmd := &cobra.Command{
		Use:   "ontograph",
		Short: "Ontology hierarchy query tool",
		Long: `Ontograph loads an ontology from an obographs JSON document and
answers hierarchy queries over it.

It provides:
- Term lookup by primary or alternate identifier
- Ancestor, descendant, child and parent traversals
- Shortest is_a paths between two terms
- RDF export (Turtle, N-Triples, JSON-LD)

Input files and defaults can also come from ontograph.yaml, loaded from
the current directory or any parent.`,
	}

	cmd.PersistentFlags().StringVarP(&app.inputPath, "input", "i", "", "Obographs JSON file (default: first configured input)")
	cmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newStatsCmd(app),
		newTermCmd(app),
		newChildrenCmd(app),
		newParentsCmd(app),
		newAncestorsCmd(app),
		newDescendantsCmd(app),
		newPathCmd(app),
		newExportCmd(app),
		newWatchCmd(app),
	)

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
