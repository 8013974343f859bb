package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/calo/pkg/event"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newEvent(id, title string, start, end time.Time) *event.Event {
	return &event.Event{
		ID:    id,
		Title: title,
		Start: event.Timestamp{Time: start},
		End:   event.Timestamp{Time: end},
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	p.Add(newEvent("b", "second created, earlier start", start.Add(-2*time.Hour), start.Add(-time.Hour)))
	p.Add(newEvent("a", "first by id", start, start.Add(time.Hour)))
	p.Add(newEvent("b", "duplicate id allowed", start, start.Add(time.Hour)))

	all := p.Events(context.Background())
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}
	if all[0].ID != "b" || all[1].ID != "a" || all[2].ID != "b" {
		t.Fatalf("order = %s,%s,%s; want insertion order b,a,b", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestUpdateMergesPatch(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	e := newEvent("a", "standup", start, start.Add(30*time.Minute))
	e.Category = "Meeting"
	p.Add(e)

	title := "daily standup"
	if !p.Update("a", event.Patch{Title: &title}) {
		t.Fatal("expected update to find the event")
	}

	got, ok := p.Get(context.Background(), "a")
	if !ok {
		t.Fatal("event vanished after update")
	}
	if got.Title != "daily standup" {
		t.Errorf("title = %q, want %q", got.Title, "daily standup")
	}
	if got.Category != "Meeting" || !got.Start.Equal(start) {
		t.Error("unpatched fields changed")
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	p.Add(newEvent("a", "keep me", start, start.Add(time.Hour)))
	before := p.Events(context.Background())

	title := "nope"
	if p.Update("missing", event.Patch{Title: &title}) {
		t.Fatal("update reported success for an unknown id")
	}

	after := p.Events(context.Background())
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d -> %d", len(before), len(after))
	}
	if after[0].Title != before[0].Title || after[0].ID != before[0].ID {
		t.Fatal("collection contents changed")
	}
}

func TestDelete(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	p.Add(newEvent("a", "one", start, start.Add(time.Hour)))
	p.Add(newEvent("b", "two", start, start.Add(time.Hour)))

	if !p.Delete("a") {
		t.Fatal("expected delete to find the event")
	}
	if p.Delete("a") {
		t.Fatal("second delete of the same id reported success")
	}
	if p.Delete("missing") {
		t.Fatal("delete reported success for an unknown id")
	}

	all := p.Events(context.Background())
	if len(all) != 1 || all[0].ID != "b" {
		t.Fatalf("expected only b to remain, got %v", all)
	}
}

func TestEventsOnSpan(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	p.Add(newEvent("single", "one day",
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local),
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)))
	p.Add(newEvent("multi", "offsite",
		time.Date(2024, 3, 1, 18, 0, 0, 0, time.Local),
		time.Date(2024, 3, 3, 9, 0, 0, 0, time.Local)))

	ctx := context.Background()
	day1 := p.EventsOn(ctx, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	if len(day1) != 2 {
		t.Fatalf("March 1: got %d events, want 2", len(day1))
	}
	day2 := p.EventsOn(ctx, time.Date(2024, 3, 2, 23, 0, 0, 0, time.Local))
	if len(day2) != 1 || day2[0].ID != "multi" {
		t.Fatalf("March 2: got %v, want only multi", day2)
	}
	day4 := p.EventsOn(ctx, time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local))
	if len(day4) != 0 {
		t.Fatalf("March 4: got %d events, want 0", len(day4))
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	base := t.TempDir()

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	start := time.Date(2024, 3, 1, 9, 0, 0, 250_000_000, time.Local)
	e := newEvent("a", "persisted", start, start.Add(45*time.Minute))
	e.Color = "#ef4444"
	p.Add(e)

	// A fresh load must reconstruct real times, not strings.
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	got, ok := p2.Get(context.Background(), "a")
	if !ok {
		t.Fatal("event missing after reload")
	}
	if !got.Start.Equal(start) {
		t.Errorf("start = %v, want %v", got.Start, start)
	}
	if !got.End.Equal(start.Add(45 * time.Minute)) {
		t.Errorf("end = %v, want %v", got.End, start.Add(45*time.Minute))
	}
	if got.Color != "#ef4444" || got.Title != "persisted" {
		t.Error("fields lost in round trip")
	}
}

func TestMalformedBlobStartsEmpty(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, EventsKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed malformed blob: %v", err)
	}

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if got := p.Events(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d events", len(got))
	}

	// The store must remain usable after the bad read.
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	p.Add(newEvent("a", "recovered", start, start.Add(time.Hour)))
	if got := p.Events(context.Background()); len(got) != 1 {
		t.Fatalf("expected 1 event after add, got %d", len(got))
	}
}
