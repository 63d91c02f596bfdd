package main

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

// newTestCmd returns a command whose stdout is captured and whose stderr
// (logs) is discarded.
func newTestCmd(t *testing.T, name string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	resetRootFlags(t)

	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: name}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetContext(context.Background())
	return cmd, out
}

// resetRootFlags restores persistent flags after the test.
func resetRootFlags(t *testing.T) {
	t.Helper()

	saved := rootFlags
	rootFlags.cfgFile = ""
	rootFlags.verbose = false
	rootFlags.logLevel = ""
	rootFlags.format = "text"
	t.Cleanup(func() { rootFlags = saved })
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
