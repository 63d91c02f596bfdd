package inspect

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"mercator-hq/attrq/pkg/config"

	"github.com/fsnotify/fsnotify"
)

func TestNewWatcher(t *testing.T) {
	watcher, err := NewWatcher(nil, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v, want nil", err)
	}

	if watcher.watcher == nil {
		t.Error("watcher.watcher is nil")
	}
	if watcher.debounce == nil {
		t.Error("watcher.debounce is nil")
	}

	if err := watcher.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	// Second Stop is a no-op.
	if err := watcher.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestDefaultWatcherConfig(t *testing.T) {
	cfg := DefaultWatcherConfig()

	if cfg.DebounceInterval != 100*time.Millisecond {
		t.Errorf("DebounceInterval = %v, want 100ms", cfg.DebounceInterval)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("Extensions count = %d, want 2", len(cfg.Extensions))
	}
	if !cfg.SkipHidden {
		t.Error("SkipHidden = false, want true")
	}
}

func TestWatcher_Watch_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "attrs.yaml", nestedDoc)

	cfg := DefaultWatcherConfig()
	cfg.Paths = []string{path}
	cfg.DebounceInterval = 50 * time.Millisecond

	watcher, err := NewWatcher(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	var reloads atomic.Int32
	reloaded := make(chan struct{}, 10)
	onReload := func() error {
		reloads.Add(1)
		select {
		case reloaded <- struct{}{}:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, onReload)
	}()

	// Wait for watcher to start
	time.Sleep(100 * time.Millisecond)

	writeDoc(t, dir, "attrs.yaml", "attributes:\n  - name: changed\n")

	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("reload not called after file modification")
	}

	// A sibling file outside the watched set is ignored.
	before := reloads.Load()
	writeDoc(t, dir, "other.yaml", "attributes: []\n")
	time.Sleep(200 * time.Millisecond)
	if got := reloads.Load(); got != before {
		t.Errorf("reloads = %d after unrelated file change, want %d", got, before)
	}
}

func TestWatcher_Debouncing(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "attrs.yaml", nestedDoc)

	cfg := DefaultWatcherConfig()
	cfg.Paths = []string{dir}
	cfg.DebounceInterval = 150 * time.Millisecond

	watcher, err := NewWatcher(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	var reloads atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, func() error {
			reloads.Add(1)
			return nil
		})
	}()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(nestedDoc), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(400 * time.Millisecond)
	if got := reloads.Load(); got != 1 {
		t.Errorf("reloads = %d after burst, want 1", got)
	}
}

func TestWatcher_DoubleStart(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultWatcherConfig()
	cfg.Paths = []string{dir}

	watcher, err := NewWatcher(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, func() error { return nil })
	}()
	time.Sleep(50 * time.Millisecond)

	if err := watcher.Watch(ctx, func() error { return nil }); err == nil {
		t.Error("second Watch() error = nil, want already running")
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultWatcherConfig()
	cfg.Paths = []string{dir}

	watcher, err := NewWatcher(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(context.Background(), func() error { return nil })
	}()
	time.Sleep(50 * time.Millisecond)

	if err := watcher.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() returned %v after Stop, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch() did not return after Stop")
	}
}

func TestWatcher_MissingPath(t *testing.T) {
	cfg := DefaultWatcherConfig()
	cfg.Paths = []string{filepath.Join(t.TempDir(), "missing.yaml")}

	watcher, err := NewWatcher(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	if err := watcher.Watch(context.Background(), func() error { return nil }); err == nil {
		t.Error("Watch() on missing path = nil, want error")
	}
}

func TestWatcher_ShouldProcessEvent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "docs", "attrs.yaml")
	tree := filepath.Join(dir, "tree")

	watcher := &Watcher{
		config: &WatcherConfig{
			Paths:      []string{file, tree},
			Extensions: []string{".yaml", ".YML"},
			SkipHidden: true,
		},
		files: map[string]struct{}{file: {}},
	}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"watched file write", fsnotify.Event{Name: file, Op: fsnotify.Write}, true},
		{"watched file rename", fsnotify.Event{Name: file, Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: file, Op: fsnotify.Chmod}, false},
		{"sibling of watched file", fsnotify.Event{Name: filepath.Join(dir, "docs", "other.yaml"), Op: fsnotify.Write}, false},
		{"tree yaml", fsnotify.Event{Name: filepath.Join(tree, "a.yaml"), Op: fsnotify.Create}, true},
		{"tree yml uppercase", fsnotify.Event{Name: filepath.Join(tree, "a.YML"), Op: fsnotify.Write}, true},
		{"tree wrong extension", fsnotify.Event{Name: filepath.Join(tree, "a.json"), Op: fsnotify.Write}, false},
		{"tree hidden", fsnotify.Event{Name: filepath.Join(tree, ".a.yaml"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := watcher.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%s) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestDebouncer_Trigger(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 3; i++ {
		n := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	time.Sleep(120 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
	if got := last.Load(); got != 3 {
		t.Errorf("callback run = %d, want the latest (3)", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d after Stop, want 0", got)
	}
}

func TestWatchDocuments(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "attrs.yaml", nestedDoc)

	in := New(nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := in.Load(ctx, []string{path}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	changed := make(chan bool, 4)
	watchCfg := config.WatchConfig{DebounceInterval: 50 * time.Millisecond}
	done := make(chan error, 1)
	go func() {
		done <- WatchDocuments(ctx, in, watchCfg, func(ctx context.Context) error {
			changed <- in.Contains(ctx, "fresh")
			return nil
		})
	}()
	time.Sleep(100 * time.Millisecond)

	writeDoc(t, dir, "attrs.yaml", "attributes:\n  - name: fresh\n")

	select {
	case ok := <-changed:
		if !ok {
			t.Error("Contains(fresh) = false in change callback")
		}
	case <-time.After(time.Second):
		t.Fatal("change callback not called")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("WatchDocuments() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("WatchDocuments() did not return after cancel")
	}
}
