package config

import "time"

// Config is the root configuration structure for attrq.
type Config struct {
	// Query contains settings shared by all path queries.
	Query QueryConfig `yaml:"query"`

	// Decode contains limits applied when reading annotation documents.
	Decode DecodeConfig `yaml:"decode"`

	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics settings.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains OpenTelemetry tracing settings.
	Tracing TracingConfig `yaml:"tracing"`

	// Watch contains settings for watch mode.
	Watch WatchConfig `yaml:"watch"`
}

// QueryConfig contains settings shared by all path queries.
type QueryConfig struct {
	// Separator joins path segments in flattened keys and splits paths given
	// on the command line.
	// Default: "."
	Separator string `yaml:"separator"`

	// Documents lists annotation documents to load when none are given
	// on the command line.
	Documents []string `yaml:"documents"`
}

// DecodeConfig contains limits applied when reading annotation documents.
type DecodeConfig struct {
	// MaxFileSize is the largest accepted document in bytes.
	// Default: 10MB
	MaxFileSize int64 `yaml:"max_file_size"`

	// MaxDepth is the deepest accepted attribute nesting, the root counting as 1.
	// Default: 32
	MaxDepth int `yaml:"max_depth"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "warn"
	Level string `yaml:"level"`

	// Format is the output format: "json", "text", "console".
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled turns on query metrics collection.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "attrq"
	Namespace string `yaml:"namespace"`

	// Subsystem is the second metric name component. Empty by default.
	Subsystem string `yaml:"subsystem"`

	// DurationBuckets are the histogram buckets for query durations in seconds.
	DurationBuckets []float64 `yaml:"duration_buckets"`

	// TextfilePath, when set, receives the metrics in Prometheus text format
	// after every watch-mode run.
	TextfilePath string `yaml:"textfile_path"`
}

// WatchConfig contains settings for watch mode.
type WatchConfig struct {
	// DebounceInterval is the quiet period after a file change before
	// documents are reloaded.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions are the file extensions that trigger a reload.
	// Default: [".yaml", ".yml"]
	Extensions []string `yaml:"extensions"`

	// ReloadSchedule additionally reloads documents on a cron schedule,
	// for filesystems that do not deliver change events.
	// Accepts standard cron expressions and descriptors such as "@every 30s".
	// Empty disables scheduled reloads.
	ReloadSchedule string `yaml:"reload_schedule"`
}

// TracingConfig contains OpenTelemetry tracing settings.
type TracingConfig struct {
	// Enabled turns on span export. When false a no-op tracer is used.
	Enabled bool `yaml:"enabled"`

	// Sampler is the sampling strategy: "always", "never", "ratio".
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces kept with the "ratio" sampler.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector address.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export call.
	// Default: 5s
	Timeout time.Duration `yaml:"timeout"`

	// ServiceName is reported as service.name.
	// Default: "attrq"
	ServiceName string `yaml:"service_name"`
}
