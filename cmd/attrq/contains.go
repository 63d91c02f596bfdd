package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/attrq/pkg/attr/inspect"
	"mercator-hq/attrq/pkg/cli"
)

var containsFlags struct {
	files []string
}

var containsCmd = &cobra.Command{
	Use:   "contains <path>",
	Short: "Check whether a path names a bare marker",
	Long: `Check whether a path ends on a bare marker attribute in any document.

A path matches only when its last segment is an attribute without
arguments. Paths ending on a name = value pair, or on an attribute that
still has arguments, do not match.

Examples:
  # level0(level1) exists
  attrq contains level0.level1 -f attrs.yaml

  # JSON output for scripts
  attrq contains level0.level1 -f attrs.yaml --format json

Exits with status 1 when the path does not match.`,
	Args: cobra.ExactArgs(1),
	RunE: runContains,
}

func init() {
	rootCmd.AddCommand(containsCmd)
	addDocumentFlag(containsCmd, &containsFlags.files)
}

func runContains(cmd *cobra.Command, args []string) error {
	path := args[0]

	a, err := newApp(cmd, containsFlags.files, "")
	if err != nil {
		return err
	}
	defer a.close()
	defer a.flushMetrics()

	found := a.inspector.Contains(a.ctx, path)

	result := cli.ContainsResult{Path: path, Found: found}
	if err := a.formatter.FormatTo(cmd.OutOrStdout(), result); err != nil {
		return cli.NewCommandError(cmd.Name(), err)
	}

	if !found {
		return cli.NewMissError(inspect.OpContains, path, a.inspector.Suggest(path))
	}
	return nil
}
