package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/export"
	"github.com/c360studio/ontograph/termid"
)

func newExportCmd(app *appContext) *cobra.Command {
	var (
		formatName string
		outPath    string
		subtree    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ontology as RDF",
		Long: `Export serializes the loaded ontology as RDF. The output file name is
derived from the input unless --out is given; pass --out - to write to
stdout. With --subtree only the named term and its descendants are
exported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ont, err := app.loadOntology()
			if err != nil {
				return err
			}

			if formatName == "" {
				formatName = app.cfg.Export.Format
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			exporter := export.NewExporter(ont)

			var output string
			if subtree != "" {
				root, err := termid.Parse(subtree)
				if err != nil {
					return fmt.Errorf("parse %q: %w", subtree, err)
				}
				output, err = exporter.ExportSubtree(root, format)
				if err != nil {
					return err
				}
			} else {
				output, err = exporter.Export(format)
				if err != nil {
					return err
				}
			}

			if outPath == "-" {
				fmt.Fprint(cmd.OutOrStdout(), output)
				return nil
			}

			target := outPath
			if target == "" {
				input, err := app.resolveInput()
				if err != nil {
					return err
				}
				info, _ := export.GetFormatInfo(format)
				base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
				target = filepath.Join(app.cfg.Export.Output, base+info.Extension)
			}

			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := os.WriteFile(target, []byte(output), 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			app.logger.Info("Exported ontology",
				"path", target,
				"format", string(format),
				"run_id", exporter.RunID())
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: turtle, ntriples, jsonld (default: configured format)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file, or - for stdout")
	cmd.Flags().StringVar(&subtree, "subtree", "", "Export only this term and its descendants")

	return cmd
}
