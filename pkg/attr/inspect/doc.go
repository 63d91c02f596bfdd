// Package inspect serves path queries over a set of decoded annotation
// documents.
//
// An Inspector loads documents through the decoder, answers Contains, Value
// and Map queries against the loaded trees, and records query metrics and
// debug logs. Reload re-reads the same documents and swaps the tree set only
// when every document decodes, so readers never observe a partial load.
//
//	in := inspect.New(cfg, logger, collector)
//	if err := in.Load(ctx, []string{"attrs.yaml"}); err != nil {
//		return err
//	}
//	if in.Contains(ctx, "level0.level1") {
//		...
//	}
//
// WithTracer adds an OpenTelemetry span per load and query.
//
// Watcher reloads on fsnotify events. ReloadScheduler reloads on a cron
// schedule for filesystems that do not deliver events. WatchDocuments runs
// both against one Inspector.
package inspect
