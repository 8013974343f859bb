package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/calo/pkg/event"
)

func TestWatchEmitsOnMutation(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before mutating.
	time.Sleep(50 * time.Millisecond)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	p.Add(&event.Event{
		ID:    "a",
		Title: "hello",
		Start: event.Timestamp{Time: start},
		End:   event.Timestamp{Time: start.Add(time.Hour)},
	})

	select {
	case c := <-ch:
		if c.Key != EventsKey {
			t.Fatalf("change key = %q, want %q", c.Key, EventsKey)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// Drain a late notification; the close must still follow.
			if _, ok := <-ch; ok {
				t.Fatal("channel still open after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
