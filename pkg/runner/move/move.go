package move

import (
	"context"
	"errors"

	"tableflip.dev/calo/pkg/dateutil"
	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/printers"
	"tableflip.dev/calo/pkg/store"
)

// Move is the terminal half of a drag-and-drop: given an event id and
// the day key of the drop target, it reschedules the event onto that
// day with its time of day and duration intact.
type Move struct {
	ID string
	To string // day key, e.g. "2024-03-05"

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}
	if n.ID == "" {
		return errors.New("can not move, no event id")
	}

	target, err := dateutil.ParseDayKey(n.To)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}

	e, ok := n.Persistence.Get(ctx, n.ID)
	if !ok {
		pp.Notice("no event with id %s", n.ID)
		return nil
	}

	start, end := event.Reschedule(&e, target)
	n.Persistence.Update(n.ID, event.Patch{Start: &start, End: &end})

	day := n.Persistence.EventsOn(ctx, target)
	pp.TitleWithCount(target.Format("Mon Jan _2"), len(day))
	pp.Events(day...)

	return nil
}
