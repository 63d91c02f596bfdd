package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mercator-hq/attrq/pkg/attr/inspect"
	"mercator-hq/attrq/pkg/cli"
	"mercator-hq/attrq/pkg/config"
	"mercator-hq/attrq/pkg/telemetry/logging"
	"mercator-hq/attrq/pkg/telemetry/metrics"
	"mercator-hq/attrq/pkg/telemetry/tracing"
)

var rootFlags struct {
	cfgFile  string
	verbose  bool
	logLevel string
	format   string
}

var rootCmd = &cobra.Command{
	Use:   "attrq",
	Short: "attrq - query annotation trees by path",
	Long: `attrq answers path queries over annotation documents.

An annotation is a tree: a bare marker such as level1, a nested attribute
such as level1_1(level2), or a name = value pair such as level2_1 = "hello".
A path is a dotted list of names walked from a root attribute.

  - contains: does the path end on a bare marker?
  - value:    which literal does the path bind?
  - map:      flatten every attribute into an ordered path -> values map
  - watch:    re-run a query whenever the documents change`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the code matching its error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.cfgFile, "config", "c", "", "config file path (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rootFlags.format, "format", "text", "output format: text, json")
}

// addDocumentFlag registers the -f/--file flag shared by query commands.
func addDocumentFlag(cmd *cobra.Command, files *[]string) {
	cmd.Flags().StringSliceVarP(files, "file", "f", nil, "annotation document(s) to query (repeatable)")
}

// app is the per-invocation wiring shared by every query command.
type app struct {
	ctx       context.Context
	cfg       *config.Config
	logger    *logging.Logger
	metrics   *metrics.Collector
	tracer    *tracing.Tracer
	inspector *inspect.Inspector
	formatter cli.Formatter
}

// newApp loads configuration, builds the logger, metrics, tracer and
// inspector, and loads the documents. A non-empty separator overrides the
// configured one. Callers must call close.
func newApp(cmd *cobra.Command, files []string, separator string) (*app, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(rootFlags.cfgFile)
	if err != nil {
		return nil, cli.NewCommandError(cmd.Name(), err)
	}

	if separator != "" {
		cfg.Query.Separator = separator
	}
	if rootFlags.logLevel != "" {
		cfg.Logging.Level = rootFlags.logLevel
	}
	if rootFlags.verbose {
		cfg.Logging.Level = "debug"
	}

	format, err := cli.ParseOutputFormat(rootFlags.format)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Writer:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, cli.NewConfigError("logging", err.Error())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, uuid.New().String())
	ctx = tracing.ExtractFromEnv(ctx)

	if len(files) == 0 {
		files = cfg.Query.Documents
	}
	if len(files) == 0 {
		return nil, cli.NewConfigError("file", "no annotation documents given (use -f or query.documents)")
	}

	tracer, err := tracing.New(&cfg.Tracing)
	if err != nil {
		return nil, cli.NewConfigError("tracing", err.Error())
	}

	collector := metrics.NewCollector(&cfg.Metrics, nil)
	in := inspect.New(cfg, logger, collector).WithTracer(tracer)

	a := &app{
		ctx:       ctx,
		cfg:       cfg,
		logger:    logger,
		metrics:   collector,
		tracer:    tracer,
		inspector: in,
		formatter: cli.NewFormatter(format),
	}

	if err := in.Load(ctx, files); err != nil {
		a.close()
		return nil, cli.NewCommandError(cmd.Name(), err)
	}

	if tracer.Enabled() {
		logger.DebugContext(ctx, "Tracing enabled",
			"endpoint", cfg.Tracing.Endpoint,
			"trace_id", tracing.TraceID(ctx),
		)
	}

	return a, nil
}

// close flushes pending spans.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.tracer.Shutdown(ctx); err != nil {
		a.logger.WarnContext(a.ctx, "Failed to shut down tracer", "error", err)
	}
}

// flushMetrics writes the metrics textfile when one is configured.
func (a *app) flushMetrics() {
	path := a.cfg.Metrics.TextfilePath
	if !a.metrics.Enabled() || path == "" {
		return
	}
	if err := a.metrics.WriteTextfile(path); err != nil {
		a.logger.WarnContext(a.ctx, "Failed to write metrics", "path", path, "error", err)
	}
}
