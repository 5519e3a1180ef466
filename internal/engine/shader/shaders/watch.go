package shaders

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports programs whose override sources changed on disk.
// Recompilation must happen on the GL thread, so changes are only
// collected here and drained with Pending.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *zap.Logger

	mu      sync.Mutex
	pending []string // arrival order, each program once
	notify  chan struct{}
}

// Watch starts watching dir. The watcher stops when ctx is done.
func Watch(ctx context.Context, dir string, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating shader watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := newWatcher(log)
	w.watcher = fw
	go w.loop(ctx)
	return w, nil
}

func newWatcher(log *zap.Logger) *Watcher {
	return &Watcher{
		log:    log,
		notify: make(chan struct{}, 1),
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, ok := ProgramFor(event.Name)
			if !ok {
				continue
			}
			w.log.Debug("shader source changed", zap.String("file", event.Name))
			w.mark(name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watcher error", zap.Error(err))
		}
	}
}

// mark records a changed program. Repeated changes to a program that is
// already pending collapse into one entry.
func (w *Watcher) mark(name string) {
	w.mu.Lock()
	if !slices.Contains(w.pending, name) {
		w.pending = append(w.pending, name)
	}
	w.mu.Unlock()

	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Pending drains the programs changed since the last call, without
// duplicates. It never blocks.
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	names := w.pending
	w.pending = nil
	w.mu.Unlock()
	return names
}

// WaitPending blocks until a change arrives or the timeout expires, then
// drains like Pending.
func (w *Watcher) WaitPending(timeout time.Duration) []string {
	deadline := time.After(timeout)
	for {
		if names := w.Pending(); len(names) > 0 {
			return names
		}
		select {
		case <-w.notify:
		case <-deadline:
			return nil
		}
	}
}
