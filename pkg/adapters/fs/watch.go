package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/dkovordanyi/leafleter/pkg/core"
)

// debounceWindow suppresses the event bursts a single atomic rename produces.
const debounceWindow = 100 * time.Millisecond

// Watch emits a modify event whenever the backing document file changes.
// The parent directory is watched rather than the file itself: atomic
// rewrites replace the inode, which would silently detach a file-level watch.
// The channel closes when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, 16)
	base := filepath.Base(s.Path)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer func() {
			_ = watcher.Close()
			close(events)
			s.setWatcherActive(false)
		}()

		var lastEmit time.Time
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				now := time.Now()
				if now.Sub(lastEmit) < debounceWindow {
					continue
				}
				lastEmit = now
				select {
				case events <- core.Event{Type: core.EventModify, Path: s.Path, Timestamp: now.Unix()}:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.logger.Warn("watcher error", "error", err)
			}
		}
	})

	return events, nil
}
