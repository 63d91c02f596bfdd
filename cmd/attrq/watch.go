package main

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"mercator-hq/attrq/pkg/attr/inspect"
	"mercator-hq/attrq/pkg/cli"
)

var watchFlags struct {
	files       []string
	metricsFile string
	schedule    string
}

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Re-evaluate a path whenever the documents change",
	Long: `Evaluate a path once, then again after every change to the documents.

Each evaluation prints whether the path names a bare marker and which value
it binds. Bursts of file events are debounced (watch.debounce_interval).
A document that fails to decode keeps the previous set loaded. With
--schedule (watch.reload_schedule) the documents are also reloaded on a
cron schedule.

Examples:
  attrq watch level0.level1 -f attrs.yaml

  # Also reload every 30 seconds, for mounts that miss file events
  attrq watch level0.level1 -f /mnt/share/attrs.yaml --schedule "@every 30s"

  # Export query metrics for a node_exporter textfile collector
  attrq watch level0.level1 -f attrs.yaml --metrics-file /var/lib/node_exporter/attrq.prom

Stops on SIGINT or SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addDocumentFlag(watchCmd, &watchFlags.files)
	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "also reload on this cron schedule, e.g. \"@every 30s\"")
	watchCmd.Flags().StringVar(&watchFlags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after each evaluation")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	a, err := newApp(cmd, watchFlags.files, "")
	if err != nil {
		return err
	}
	defer a.close()
	if watchFlags.metricsFile != "" {
		a.cfg.Metrics.Enabled = true
		a.cfg.Metrics.TextfilePath = watchFlags.metricsFile
	}
	if watchFlags.schedule != "" {
		if _, err := cron.ParseStandard(watchFlags.schedule); err != nil {
			return cli.NewConfigError("schedule", err.Error())
		}
		a.cfg.Watch.ReloadSchedule = watchFlags.schedule
	}

	ctx, stop := cli.SetupSignalHandler(a.ctx)
	defer stop()

	out := cmd.OutOrStdout()
	evaluate := func(ctx context.Context) error {
		report := pathReport(ctx, a.inspector, path)
		a.flushMetrics()
		return a.formatter.FormatTo(out, report)
	}

	if err := evaluate(ctx); err != nil {
		return cli.NewCommandError(cmd.Name(), err)
	}

	a.logger.InfoContext(ctx, "Watching documents", "documents", len(a.inspector.Paths()))
	return inspect.WatchDocuments(ctx, a.inspector, a.cfg.Watch, evaluate)
}

// pathReport answers both queries for path.
func pathReport(ctx context.Context, in *inspect.Inspector, path string) cli.PathReport {
	report := cli.PathReport{
		Path:     path,
		Contains: in.Contains(ctx, path),
	}
	if value, ok := in.Value(ctx, path); ok {
		report.Value = &value
	}
	return report
}
