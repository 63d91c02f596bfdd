package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/attrq/pkg/cli"
)

var mapFlags struct {
	files     []string
	separator string
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Flatten all attributes into a path -> values map",
	Long: `Flatten every outer attribute into an ordered map.

Each bare marker contributes its path with no values; each name = value pair
appends its literal under its path. Keys keep the order in which they were
first seen and repeated paths collect every value.

Examples:
  attrq map -f attrs.yaml

  # Ordered JSON object
  attrq map -f attrs.yaml --format json

  # Join segments with "::"
  attrq map -f attrs.yaml --separator ::`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
	addDocumentFlag(mapCmd, &mapFlags.files)
	mapCmd.Flags().StringVar(&mapFlags.separator, "separator", "", "path segment separator (default from config, \".\")")
}

func runMap(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, mapFlags.files, mapFlags.separator)
	if err != nil {
		return err
	}
	defer a.close()
	defer a.flushMetrics()

	if err := a.formatter.FormatTo(cmd.OutOrStdout(), a.inspector.Map(a.ctx)); err != nil {
		return cli.NewCommandError(cmd.Name(), err)
	}
	return nil
}
