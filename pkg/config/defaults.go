package config

import "time"

// Default values for configuration fields.
const (
	DefaultSeparator        = "."
	DefaultMaxFileSize      = int64(10 * 1024 * 1024) // 10MB
	DefaultMaxDepth         = 32
	DefaultLogLevel         = "warn"
	DefaultLogFormat        = "text"
	DefaultMetricsNamespace = "attrq"
	DefaultDebounceInterval = 100 * time.Millisecond
	DefaultTracingSampler   = "always"
	DefaultSampleRatio      = 1.0
	DefaultTracingEndpoint  = "localhost:4317"
	DefaultTracingTimeout   = 5 * time.Second
	DefaultServiceName      = "attrq"
)

// DefaultDurationBuckets covers in-memory tree walks (1µs to ~16ms).
var DefaultDurationBuckets = []float64{
	0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.016,
}

// DefaultExtensions are the document extensions watched for changes.
var DefaultExtensions = []string{".yaml", ".yml"}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Query.Separator == "" {
		cfg.Query.Separator = DefaultSeparator
	}

	if cfg.Decode.MaxFileSize == 0 {
		cfg.Decode.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Decode.MaxDepth == 0 {
		cfg.Decode.MaxDepth = DefaultMaxDepth
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if len(cfg.Metrics.DurationBuckets) == 0 {
		cfg.Metrics.DurationBuckets = append([]float64(nil), DefaultDurationBuckets...)
	}

	if cfg.Tracing.Sampler == "" {
		cfg.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = DefaultSampleRatio
	}
	if cfg.Tracing.Endpoint == "" {
		cfg.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Tracing.Timeout == 0 {
		cfg.Tracing.Timeout = DefaultTracingTimeout
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultServiceName
	}

	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultExtensions...)
	}
}
