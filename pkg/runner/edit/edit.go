package edit

import (
	"context"
	"errors"

	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/printers"
	"tableflip.dev/calo/pkg/store"
)

type Edit struct {
	ID    string
	Patch event.Patch

	Persistence store.Persistence
}

// Do validates the merged result before anything reaches the store, so
// a patch can never push a stored event into an invalid state. The
// store keeps its silent no-op contract for unknown ids; the runner
// just tells the user.
func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	if n.ID == "" {
		return errors.New("can not edit, no event id")
	}

	pp := printers.PrettyPrint{ShowID: true}

	if n.Patch.IsZero() {
		pp.Notice("nothing to change")
		return nil
	}

	existing, ok := n.Persistence.Get(ctx, n.ID)
	if !ok {
		pp.Notice("no event with id %s", n.ID)
		return nil
	}

	merged := n.Patch.Apply(existing)
	draft := event.Draft{
		ID:    merged.ID,
		Title: merged.Title,
		Start: merged.Start.Time,
		End:   merged.End.Time,
	}
	if errs := draft.Validate(); errs != nil {
		pp.Title("event not saved")
		pp.Errors(errs)
		return errs
	}

	n.Persistence.Update(n.ID, n.Patch)

	updated, _ := n.Persistence.Get(ctx, n.ID)
	pp.Title("updated")
	pp.Events(updated)

	return nil
}
