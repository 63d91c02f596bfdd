package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/attrq/pkg/cli"
)

func TestRunWatch(t *testing.T) {
	resetRootFlags(t)

	dir := t.TempDir()
	doc := filepath.Join(dir, "attrs.yaml")
	if err := os.WriteFile(doc, []byte("attributes:\n  - name: level0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	metricsFile := filepath.Join(dir, "attrq.prom")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	cmd := &cobra.Command{Use: "watch"}
	cmd.SetOut(out)
	cmd.SetErr(&syncBuffer{})
	cmd.SetContext(ctx)

	watchFlags.files = []string{doc}
	watchFlags.metricsFile = metricsFile
	t.Cleanup(func() { watchFlags.metricsFile = "" })

	done := make(chan error, 1)
	go func() {
		done <- runWatch(cmd, []string{"level0.level1"})
	}()

	waitFor(t, out, "level0.level1: contains=false value=<none>")
	time.Sleep(150 * time.Millisecond)

	if err := os.WriteFile(doc, []byte("attributes:\n  - name: level0\n    args:\n      - name: level1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, out, "level0.level1: contains=true value=<none>")

	data, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), `attrq_reloads_total{status="success"}`) {
		t.Errorf("metrics file missing reload counter:\n%s", data)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runWatch() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("runWatch() did not return after cancel")
	}
}

// waitFor polls out until it contains want or the deadline passes.
func waitFor(t *testing.T, out *syncBuffer, want string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("output never contained %q:\n%s", want, out.String())
}

func TestRunWatch_InvalidSchedule(t *testing.T) {
	resetRootFlags(t)

	dir := t.TempDir()
	doc := filepath.Join(dir, "attrs.yaml")
	if err := os.WriteFile(doc, []byte("attributes:\n  - name: level0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{Use: "watch"}
	cmd.SetOut(&syncBuffer{})
	cmd.SetErr(&syncBuffer{})
	cmd.SetContext(context.Background())

	watchFlags.files = []string{doc}
	watchFlags.schedule = "every now and then"
	t.Cleanup(func() { watchFlags.schedule = "" })

	err := runWatch(cmd, []string{"level0"})
	if err == nil {
		t.Fatal("runWatch() = nil, want schedule error")
	}
	if got := cli.ExitCode(err); got != cli.ExitError {
		t.Errorf("ExitCode() = %d, want %d", got, cli.ExitError)
	}
}
