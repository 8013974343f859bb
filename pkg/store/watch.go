package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is emitted by Persistence.Watch when the persisted collection
// changes on disk, letting consumers refresh their derived views
// instead of holding references into the store.
type Change struct {
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid losing notifications. The channel
// is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Change, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	changes := make(chan Change, 16)

	go func() {
		defer close(changes)
		defer closeWatcher()

		send := func(c Change) {
			select {
			case changes <- c:
			default:
				// Drop the notification if the consumer is not ready; a
				// subsequent refresh picks up the same state, and this
				// keeps filesystem storms from blocking the watcher.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a refresh signal to keep
				// clients in sync even when the change is unclassifiable.
				throttle.Enqueue(Change{Key: EventsKey}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(evt.Name)
				if key != EventsKey {
					continue
				}
				throttle.Enqueue(Change{Key: key}, send)
			}
		}
	}()

	return changes, nil
}

// changeThrottle coalesces rapid change notifications so consumers can
// refresh once per burst of writes instead of once per write.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *changeThrottle) Enqueue(c Change, send func(Change)) {
	t.mu.Lock()
	t.pending[c.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(Change)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Change{Key: key})
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
