package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches annotation documents for changes and triggers reloads.
// Rapid bursts of events collapse into one reload through a Debouncer.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *WatcherConfig
	debounce *Debouncer

	// files holds cleaned paths of watched regular files; events on other
	// files in their parent directories are ignored.
	files map[string]struct{}

	mu        sync.RWMutex
	running   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// WatcherConfig contains configuration for the document watcher.
type WatcherConfig struct {
	// Paths are the files or directories to watch.
	Paths []string

	// DebounceInterval is the quiet period after the last event before
	// the reload runs (default: 100ms).
	DebounceInterval time.Duration

	// Extensions restricts which files inside watched directories
	// trigger reloads (e.g., ".yaml", ".yml").
	Extensions []string

	// SkipHidden ignores dot files and dot directories.
	SkipHidden bool
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		DebounceInterval: 100 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml"},
		SkipHidden:       true,
	}
}

// NewWatcher creates a new document watcher.
func NewWatcher(config *WatcherConfig, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultWatcherConfig()
	}

	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		files:    make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch blocks until ctx is cancelled or Stop is called, invoking onReload
// once per debounced burst of relevant file events.
func (w *Watcher) Watch(ctx context.Context, onReload func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	for _, p := range w.config.Paths {
		if err := w.addPath(p); err != nil {
			return fmt.Errorf("failed to watch path %q: %w", p, err)
		}
	}

	w.logger.Info("Document watcher started",
		"paths", w.config.Paths,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Document watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("Document watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("File event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			w.debounce.Trigger(func() {
				w.logger.Info("Reloading documents",
					"path", event.Name,
					"op", event.Op.String(),
				)

				if err := onReload(); err != nil {
					w.logger.Error("Document reload failed", "error", err)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}

			w.logger.Error("Document watcher error", "error", err)
		}
	}
}

// Stop stops the watcher and releases the fsnotify handle. It is safe to
// call more than once and after Watch has returned.
func (w *Watcher) Stop() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stopCh)

		w.mu.RLock()
		running := w.running
		w.mu.RUnlock()
		if running {
			<-w.doneCh
		}

		w.debounce.Stop()

		if cerr := w.watcher.Close(); cerr != nil {
			err = fmt.Errorf("failed to close watcher: %w", cerr)
		}
	})
	return err
}

// addPath watches a directory tree, or the parent directory of a file so
// that editors replacing the file by rename are still seen.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return w.addDirectory(path)
	}

	w.files[filepath.Clean(path)] = struct{}{}
	return w.watcher.Add(filepath.Dir(path))
}

// addDirectory adds a directory and all subdirectories to the watcher.
func (w *Watcher) addDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if w.config.SkipHidden && path != dir && isHidden(path) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		w.logger.Debug("Watching directory", "path", path)
		return nil
	})
}

// shouldProcessEvent determines if an event should trigger a reload.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	name := filepath.Clean(event.Name)
	if _, ok := w.files[name]; ok {
		return true
	}
	if w.inWatchedFileDir(name) && !w.inWatchedTree(name) {
		return false
	}

	if !w.hasValidExtension(strings.ToLower(filepath.Ext(name))) {
		return false
	}

	if w.config.SkipHidden && isHidden(name) {
		return false
	}

	return true
}

// inWatchedFileDir reports whether name sits next to an explicitly watched file.
func (w *Watcher) inWatchedFileDir(name string) bool {
	dir := filepath.Dir(name)
	for f := range w.files {
		if filepath.Dir(f) == dir {
			return true
		}
	}
	return false
}

// inWatchedTree reports whether name lies under a watched directory path.
func (w *Watcher) inWatchedTree(name string) bool {
	for _, p := range w.config.Paths {
		clean := filepath.Clean(p)
		if _, isFile := w.files[clean]; isFile {
			continue
		}
		if rel, err := filepath.Rel(clean, name); err == nil && !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}

func (w *Watcher) hasValidExtension(ext string) bool {
	return slices.ContainsFunc(w.config.Extensions, func(valid string) bool {
		return ext == strings.ToLower(valid)
	})
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// Debouncer collects rapid events and runs the latest callback only after
// a quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopped  bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback to run after the interval, replacing any
// callback still pending.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.callback = nil
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

// Stop cancels any pending callback. Later Triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
