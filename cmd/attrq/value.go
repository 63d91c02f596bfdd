package main

import (
	"github.com/spf13/cobra"

	"mercator-hq/attrq/pkg/attr/inspect"
	"mercator-hq/attrq/pkg/attr/lit"
	"mercator-hq/attrq/pkg/cli"
)

var valueFlags struct {
	files []string
	as    string
}

var valueCmd = &cobra.Command{
	Use:   "value <path>",
	Short: "Print the value bound at a path",
	Long: `Print the literal bound by the first name = value pair matching a path.

Documents are searched in order and the first match wins. With --as the
literal is cast to the requested kind; a literal of a different kind is an
error (integers are not floats, negative integers are not uint64).

Examples:
  attrq value level0.level1_1.level2_1 -f attrs.yaml

  # Cast to an unsigned integer
  attrq value limits.max -f attrs.yaml --as uint64

Exits with status 1 when no value is bound at the path.`,
	Args: cobra.ExactArgs(1),
	RunE: runValue,
}

func init() {
	rootCmd.AddCommand(valueCmd)
	addDocumentFlag(valueCmd, &valueFlags.files)
	valueCmd.Flags().StringVar(&valueFlags.as, "as", "", "cast to kind: string, int64, uint64, float64, bool")
}

func runValue(cmd *cobra.Command, args []string) error {
	path := args[0]

	a, err := newApp(cmd, valueFlags.files, "")
	if err != nil {
		return err
	}
	defer a.close()
	defer a.flushMetrics()

	literal, found := a.inspector.Value(a.ctx, path)
	if !found {
		if err := a.formatter.FormatTo(cmd.OutOrStdout(), cli.ValueResult{Path: path}); err != nil {
			return cli.NewCommandError(cmd.Name(), err)
		}
		return cli.NewMissError(inspect.OpValue, path, a.inspector.Suggest(path))
	}

	result := cli.ValueResult{
		Path:  path,
		Found: true,
		Kind:  string(literal.Kind()),
		Value: literal,
	}
	if valueFlags.as != "" {
		cast, err := lit.ByName(literal, valueFlags.as)
		if err != nil {
			return cli.NewCommandError(cmd.Name(), err)
		}
		result.Kind = valueFlags.as
		result.Value = cast
	}

	if err := a.formatter.FormatTo(cmd.OutOrStdout(), result); err != nil {
		return cli.NewCommandError(cmd.Name(), err)
	}
	return nil
}
