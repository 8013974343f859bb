package add

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestAddStoresValidDraft(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	a := Add{
		Draft: event.Draft{
			Title: "review",
			Start: time.Date(2024, 3, 1, 14, 0, 0, 0, time.Local),
			End:   time.Date(2024, 3, 1, 15, 0, 0, 0, time.Local),
		},
		Persistence: p,
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}

	all := p.Events(context.Background())
	if len(all) != 1 {
		t.Fatalf("got %d events, want 1", len(all))
	}
	if all[0].ID == "" {
		t.Error("expected a generated id")
	}
	if all[0].Title != "review" {
		t.Errorf("title = %q, want %q", all[0].Title, "review")
	}
}

func TestAddBlocksInvalidDraft(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	a := Add{
		Draft: event.Draft{
			Title: "",
			Start: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
			End:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
		},
		Persistence: p,
	}

	err = a.Do(context.Background())
	if err == nil {
		t.Fatal("expected a validation error")
	}
	errs, ok := err.(event.FieldErrors)
	if !ok {
		t.Fatalf("error type = %T, want FieldErrors", err)
	}
	if _, found := errs["title"]; !found {
		t.Error("expected a title error")
	}
	if _, found := errs["endDate"]; !found {
		t.Error("expected an end-before-start error")
	}

	if got := p.Events(context.Background()); len(got) != 0 {
		t.Fatalf("store mutated despite failed validation: %d events", len(got))
	}
}
