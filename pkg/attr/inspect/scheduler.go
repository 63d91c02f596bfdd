package inspect

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mercator-hq/attrq/pkg/telemetry/logging"

	"github.com/robfig/cron/v3"
)

// ReloadScheduler runs a reload function on a cron schedule. It covers
// document locations where file system notifications are not delivered,
// such as network mounts.
type ReloadScheduler struct {
	schedule string
	reload   func(context.Context) error
	logger   *logging.Logger

	mu       sync.Mutex
	cron     *cron.Cron
	running  bool
	stopCh   chan struct{} // closed by Stop
	released chan struct{} // closed when the ctx watcher of the current run exits
}

// NewReloadScheduler creates a scheduler that calls reload on schedule,
// typically Inspector.Reload. logger may be nil.
func NewReloadScheduler(schedule string, reload func(context.Context) error, logger *logging.Logger) *ReloadScheduler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ReloadScheduler{
		schedule: schedule,
		reload:   reload,
		logger:   logger.With("component", "inspect.scheduler"),
	}
}

// Start schedules reloads. The schedule accepts standard five-field cron
// expressions and descriptors:
//   - "*/5 * * * *" - every five minutes
//   - "@hourly"     - once an hour
//   - "@every 30s"  - fixed interval
//
// An empty schedule is a no-op. The scheduler stops when ctx is cancelled.
func (s *ReloadScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Debug("Reload schedule not configured, skipping scheduler")
		return nil
	}
	if s.running {
		return fmt.Errorf("reload scheduler already running")
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(s.schedule, func() { s.runReload(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule reload: %w", err)
	}

	c.Start()
	s.cron = c
	s.running = true
	stop := make(chan struct{})
	released := make(chan struct{})
	s.stopCh, s.released = stop, released

	s.logger.Info("Reload scheduler started", "schedule", s.schedule)

	go func() {
		defer close(released)
		select {
		case <-ctx.Done():
			s.Stop()
		case <-stop:
		}
	}()

	return nil
}

func (s *ReloadScheduler) runReload(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	s.logger.DebugContext(ctx, "Starting scheduled reload")

	if err := s.reload(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Scheduled reload failed", "error", err)
		return
	}
	s.logger.DebugContext(ctx, "Scheduled reload completed")
}

// Stop stops the scheduler and waits for a running reload to finish.
func (s *ReloadScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil || !s.running {
		return
	}

	<-s.cron.Stop().Done()
	close(s.stopCh)
	s.running = false
	s.logger.Info("Reload scheduler stopped")
}

// IsRunning reports whether reloads are scheduled.
func (s *ReloadScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled reload, or nil when not running.
func (s *ReloadScheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil || !s.running {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
