/*
Package cli provides command-line interface utilities for attrq.

The cli package includes output formatters, exit-code errors, and signal
handling used by the attrq command.

Output Formatting:

Query results are written as text, JSON, or CSV:

	formatter := cli.NewFormatter(cli.FormatJSON)
	result := cli.ContainsResult{Path: "level0.level1", Found: true}
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Exit Codes:

A query that finds nothing returns a *MissError; ExitCode maps it to 1 and
any other error to 2.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
