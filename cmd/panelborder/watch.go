package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stitchkit/panel"
)

// defaultDebounce groups the bursts of events editors produce on save.
const defaultDebounce = 200 * time.Millisecond

// fileWatcher calls a function whenever one file is written or recreated.
type fileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// newFileWatcher starts watching the directory holding path. The directory
// is watched rather than the file because many editors save by writing a
// temporary file and renaming it over the original.
func newFileWatcher(path string, debounce time.Duration) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	return &fileWatcher{path: abs, watcher: w, debounce: debounce}, nil
}

// Run calls fn after each change to the file until ctx is cancelled or the
// watcher fails. Errors from fn are logged and do not stop the watcher.
func (fw *fileWatcher) Run(ctx context.Context, fn func() error) error {
	defer fw.watcher.Close()

	logger := panel.Logger()
	logger.Info("watching for changes", "path", fw.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.matches(ev) {
				continue
			}
			logger.Debug("file event", "op", ev.Op.String(), "file", ev.Name)

			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			start := time.Now()
			if err := fn(); err != nil {
				logger.Error("re-run failed", "error", err, "duration", time.Since(start))
			} else {
				logger.Info("re-run completed", "duration", time.Since(start))
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher: %w", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (fw *fileWatcher) matches(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return name == fw.path
}

// watchAndRun re-runs fn on changes to path until SIGINT or SIGTERM.
func watchAndRun(ctx context.Context, path string, fn func() error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := newFileWatcher(path, defaultDebounce)
	if err != nil {
		return err
	}
	return fw.Run(ctx, fn)
}
