package tracing

import (
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Sampler names accepted in tracing.sampler.
const (
	SamplerAlways = "always"
	SamplerNever  = "never"
	SamplerRatio  = "ratio"
)

// createSampler maps a sampler name to an SDK sampler. Root spans follow the
// named strategy; child spans inherit the decision of a sampled or unsampled
// parent, including a parent taken from TRACEPARENT.
func createSampler(name string, ratio float64) (sdktrace.Sampler, error) {
	root, err := rootSampler(name, ratio)
	if err != nil {
		return nil, err
	}
	return sdktrace.ParentBased(root), nil
}

func rootSampler(name string, ratio float64) (sdktrace.Sampler, error) {
	switch name {
	case "", SamplerAlways:
		return sdktrace.AlwaysSample(), nil
	case SamplerNever:
		return sdktrace.NeverSample(), nil
	case SamplerRatio:
		if ratio < 0 || ratio > 1 {
			return nil, fmt.Errorf("sample ratio %v out of range [0, 1]", ratio)
		}
		return sdktrace.TraceIDRatioBased(ratio), nil
	}
	return nil, fmt.Errorf("unknown sampler %q (valid: always, never, ratio)", name)
}
