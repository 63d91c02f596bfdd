package inspect

import (
	"context"
	"sync"

	"mercator-hq/attrq/pkg/config"
)

// WatchDocuments reloads in whenever one of its documents changes, and on
// cfg.ReloadSchedule when set, then calls onChange. Reloads never overlap.
// It blocks until ctx is cancelled.
func WatchDocuments(ctx context.Context, in *Inspector, cfg config.WatchConfig, onChange func(context.Context) error) error {
	wcfg := DefaultWatcherConfig()
	wcfg.Paths = in.Paths()
	if cfg.DebounceInterval > 0 {
		wcfg.DebounceInterval = cfg.DebounceInterval
	}
	if len(cfg.Extensions) > 0 {
		wcfg.Extensions = cfg.Extensions
	}

	var mu sync.Mutex
	reload := func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()

		if err := in.Reload(ctx); err != nil {
			return err
		}
		if onChange == nil {
			return nil
		}
		return onChange(ctx)
	}

	w, err := NewWatcher(wcfg, in.logger.Slog())
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if cfg.ReloadSchedule != "" {
		scheduler := NewReloadScheduler(cfg.ReloadSchedule, reload, in.logger)
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	return w.Watch(ctx, func() error {
		return reload(ctx)
	})
}
