package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zod-prisma-types",
	Short: "Generates zod schemas from a Prisma DMMF document.",
	Long: `zod-prisma-types builds an enriched graph from the DMMF document the
Prisma engine produces: classified fields, model-bound operations and the
exact import statements every generated schema file needs.`,
}

var configFile string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML generator config")
}
