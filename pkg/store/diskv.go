package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/calo/pkg/event"
)

// EventsKey is the fixed storage slot holding the whole event
// collection as one JSON blob.
const EventsKey = "calendar-events"

// Persistence owns the authoritative event collection. The in-memory
// collection is the source of truth: mutations apply synchronously and
// are immediately visible to reads, while the durable write is a
// best-effort side effect. There is one logical writer, so no locking
// is done here; callers must not mutate from multiple goroutines.
type Persistence interface {
	// Events returns a snapshot copy of the collection in insertion order.
	Events(ctx context.Context) []event.Event

	// EventsOn returns the events whose day span contains the given date.
	EventsOn(ctx context.Context, date time.Time) []event.Event

	// Get returns the event with the given id, if present.
	Get(ctx context.Context, id string) (event.Event, bool)

	// Add appends the event. No uniqueness check is made on the id.
	Add(e *event.Event)

	// Update merges the patch into the event with the given id and
	// reports whether a matching event existed. An unknown id is a
	// no-op, not an error.
	Update(id string, p event.Patch) bool

	// Delete removes the event with the given id and reports whether a
	// matching event existed. An unknown id is a no-op.
	Delete(id string) bool

	// Watch streams change notifications until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Change, error)
}

// Load creates a Persistence backed by diskv using the provided config
// and restores the persisted collection. A missing or unreadable blob
// is not fatal: the store starts empty and the problem is logged.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
	p.restore()
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	events   []event.Event
}

// restore deserializes the collection blob once at startup.
func (p *persistence) restore() {
	p.events = make([]event.Event, 0)
	if !p.d.Has(EventsKey) {
		return
	}
	data, err := p.d.Read(EventsKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", EventsKey, err)
		return
	}
	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", EventsKey, err)
		return
	}
	p.events = events
}

// persist serializes the whole collection under the fixed key. Failures
// are logged and swallowed: durable storage trouble must never corrupt
// or roll back the in-memory state.
func (p *persistence) persist() {
	data, err := json.Marshal(p.events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: encode %s: %v\n", EventsKey, err)
		return
	}
	if err := p.d.Write(EventsKey, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", EventsKey, err)
	}
}

func (p *persistence) Events(ctx context.Context) []event.Event {
	all := make([]event.Event, len(p.events))
	copy(all, p.events)
	return all
}

func (p *persistence) EventsOn(ctx context.Context, date time.Time) []event.Event {
	all := make([]event.Event, 0)
	for i := range p.events {
		if p.events[i].On(date) {
			all = append(all, p.events[i])
		}
	}
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (event.Event, bool) {
	for i := range p.events {
		if p.events[i].ID == id {
			return p.events[i], true
		}
	}
	return event.Event{}, false
}

func (p *persistence) Add(e *event.Event) {
	p.events = append(p.events, *e)
	p.persist()
}

func (p *persistence) Update(id string, patch event.Patch) bool {
	for i := range p.events {
		if p.events[i].ID == id {
			p.events[i] = patch.Apply(p.events[i])
			p.persist()
			return true
		}
	}
	return false
}

func (p *persistence) Delete(id string) bool {
	for i := range p.events {
		if p.events[i].ID == id {
			p.events = append(p.events[:i], p.events[i+1:]...)
			p.persist()
			return true
		}
	}
	return false
}
