package add

import (
	"context"
	"errors"

	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/printers"
	"tableflip.dev/calo/pkg/store"
)

type Add struct {
	Draft event.Draft

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	pp := printers.PrettyPrint{}

	if errs := n.Draft.Validate(); errs != nil {
		pp.Title("event not saved")
		pp.Errors(errs)
		return errs
	}

	e := n.Draft.Event()
	n.Persistence.Add(e)

	day := n.Persistence.EventsOn(ctx, e.Start.Time)
	pp.TitleWithCount(e.Start.Local().Format("Mon Jan _2"), len(day))
	pp.Events(day...)

	return nil
}
