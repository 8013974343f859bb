package remove

import (
	"context"
	"errors"

	"tableflip.dev/calo/pkg/printers"
	"tableflip.dev/calo/pkg/store"
)

type Remove struct {
	ID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	if n.ID == "" {
		return errors.New("can not remove, no event id")
	}

	pp := printers.PrettyPrint{}
	if !n.Persistence.Delete(n.ID) {
		pp.Notice("no event with id %s", n.ID)
		return nil
	}

	pp.Notice("removed %s", n.ID)
	return nil
}
