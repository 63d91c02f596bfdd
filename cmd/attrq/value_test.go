package main

import (
	"errors"
	"testing"

	"mercator-hq/attrq/pkg/attr/lit"
	"mercator-hq/attrq/pkg/cli"
)

func TestRunValue(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		as       string
		format   string
		wantOut  string
		wantMiss bool
	}{
		{
			name:    "string value",
			path:    "level0.level1_1.level2_1",
			wantOut: "hello\n",
		},
		{
			name:    "int value",
			path:    "limits.max",
			wantOut: "12\n",
		},
		{
			name:    "cast to uint64",
			path:    "limits.max",
			as:      "uint64",
			wantOut: "12\n",
		},
		{
			name:    "json keeps kind",
			path:    "limits.ratio",
			format:  "json",
			wantOut: "{\n  \"path\": \"limits.ratio\",\n  \"found\": true,\n  \"kind\": \"float\",\n  \"value\": 0.5\n}\n",
		},
		{
			name:     "marker has no value",
			path:     "level0.level1",
			wantOut:  "",
			wantMiss: true,
		},
		{
			name:     "intermediate node has no value",
			path:     "level0.level1_1",
			wantMiss: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCmd(t, "value")
			if tt.format != "" {
				rootFlags.format = tt.format
			}
			valueFlags.files = []string{"testdata/attrs.yaml"}
			valueFlags.as = tt.as

			err := runValue(cmd, []string{tt.path})

			var miss *cli.MissError
			if got := errors.As(err, &miss); got != tt.wantMiss {
				t.Fatalf("runValue() error = %v, wantMiss %v", err, tt.wantMiss)
			}
			if !tt.wantMiss && err != nil {
				t.Fatalf("runValue() error = %v", err)
			}
			if out.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestRunValue_CastMismatch(t *testing.T) {
	cmd, _ := newTestCmd(t, "value")
	valueFlags.files = []string{"testdata/attrs.yaml"}
	valueFlags.as = "bool"
	t.Cleanup(func() { valueFlags.as = "" })

	err := runValue(cmd, []string{"limits.max"})
	if !errors.Is(err, lit.ErrCast) {
		t.Fatalf("runValue() error = %v, want ErrCast", err)
	}
	if cli.ExitCode(err) != cli.ExitError {
		t.Errorf("ExitCode() = %d, want %d", cli.ExitCode(err), cli.ExitError)
	}
}
