package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/basketweave/pkg/adapters/fs"
)

// DefaultDebounce is how long Watch waits for a burst of changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// BuildFunc receives the outcome of every build Watch runs.
type BuildFunc func(dir *fs.Directory, err error)

// Watch builds the manifest once, then rebuilds it whenever a file next to the
// manifest changes, until ctx is done. Builds never overlap: each one is a
// complete run of Build on the calling loop. Events under the output directory
// are ignored.
func Watch(ctx context.Context, manifestPath, output string, onBuild BuildFunc, opts ...Option) error {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return err
	}
	logger := apply(opts).logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &rebuilder{
		manifest: abs,
		output:   output,
		onBuild:  onBuild,
		opts:     opts,
		logger:   logger,
	}
	w.build(ctx)

	done := make(chan error, 2)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		err := w.loop(ctx, watcher)
		done <- err
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("watch loop failed", "error", err)
		done <- err
	}))
	return <-done
}

type rebuilder struct {
	manifest string
	output   string
	written  string
	onBuild  BuildFunc
	opts     []Option
	logger   *slog.Logger
}

func (w *rebuilder) build(ctx context.Context) {
	dir, err := Build(ctx, w.manifest, w.output, w.opts...)
	if dir != nil {
		if abs, absErr := filepath.Abs(dir.Path); absErr == nil {
			w.written = abs
		}
	}
	if err != nil {
		w.logger.Warn("rebuild failed", "manifest", w.manifest, "error", err)
	}
	if w.onBuild != nil {
		w.onBuild(dir, err)
	}
}

// relevant drops events that cannot change the build, including the ones the
// build itself causes.
func (w *rebuilder) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if w.written == "" {
		return true
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return true
	}
	return name != w.written && !strings.HasPrefix(name, w.written+string(filepath.Separator))
}

func (w *rebuilder) loop(ctx context.Context, watcher *fsnotify.Watcher) error {
	timer := time.NewTimer(DefaultDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected", "name", event.Name, "op", event.Op.String())
			timer.Reset(DefaultDebounce)

		case <-timer.C:
			w.build(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("fsnotify error", "error", err)
		}
	}
}
