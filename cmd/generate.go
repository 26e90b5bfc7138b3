package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/martinc1991/zod-prisma-types/compiler/gen"
	"github.com/martinc1991/zod-prisma-types/compiler/load"
)

var dmmfFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Builds the generator graph from a DMMF document",
	Long: `Reads a DMMF JSON document, builds the enriched graph and prints a
summary of every model and operation with its resolved import statements.
Rendering and file writing are performed by the renderer, not this command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(dmmfFile)
		if err != nil {
			return fmt.Errorf("failed to read DMMF document: %w", err)
		}
		doc, err := load.UnmarshalDocument(buf)
		if err != nil {
			return fmt.Errorf("failed to decode DMMF document: %w", err)
		}
		opts, err := loadOptions(configFile)
		if err != nil {
			return err
		}
		graph, err := gen.NewGraph(doc, opts...)
		if err != nil {
			return fmt.Errorf("failed to build graph: %w", err)
		}
		printSummary(cmd, graph)
		return nil
	},
}

func printSummary(cmd *cobra.Command, g *gen.Graph) {
	out := cmd.OutOrStdout()
	for _, m := range g.Nodes {
		fmt.Fprintf(out, "model %s (scalar: %d, relation: %d, enum: %d)\n",
			m.Name, len(m.ScalarFields), len(m.RelationFields), len(m.EnumFields))
		for _, stmt := range m.Imports() {
			fmt.Fprintf(out, "  %s\n", stmt)
		}
	}
	for _, e := range g.Enums {
		fmt.Fprintf(out, "enum %s (%s)\n", e.Name, strings.Join(e.Values, ", "))
	}
	for _, a := range g.Actions {
		target := "-"
		if lm := a.LinkedModel(); lm != nil {
			target = lm.Name
		}
		arg := a.ArgName
		if arg == "" {
			arg = "-"
		}
		fmt.Fprintf(out, "action %s (verb: %s, model: %s, args: %s)\n", a.Name, a.Verb, target, arg)
		for _, stmt := range a.Imports() {
			fmt.Fprintf(out, "  %s\n", stmt)
		}
	}
}

func init() {
	generateCmd.Flags().StringVar(&dmmfFile, "dmmf", "dmmf.json", "Path to the DMMF JSON document")
	rootCmd.AddCommand(generateCmd)
}
