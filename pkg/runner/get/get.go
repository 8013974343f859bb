package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/printers"
	"tableflip.dev/calo/pkg/store"
)

type Get struct {
	ShowID bool
	JSON   bool
	On     *time.Time

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	var all []event.Event
	title := "all events"
	if n.On != nil {
		all = n.Persistence.EventsOn(ctx, *n.On)
		title = n.On.Format("Mon Jan _2")
	} else {
		all = n.Persistence.Events(ctx)
	}

	if n.JSON {
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount(title, len(all))
	pp.Events(all...)

	return nil
}
