package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/ics"
	"tableflip.dev/calo/pkg/printers"
	"tableflip.dev/calo/pkg/store"
)

type Import struct {
	Path string

	Persistence store.Persistence
}

// Do imports events from an iCalendar file. Every imported event passes
// the same validation as a hand-entered one; rejects are reported and
// skipped rather than failing the batch.
func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}
	if n.Path == "" {
		return errors.New("can not import, no file given")
	}

	body, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("import: read %s: %w", n.Path, err)
	}

	events, err := ics.Import(body)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	added := 0
	for _, e := range events {
		draft := event.Draft{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Start:       e.Start.Time,
			End:         e.End.Time,
			Color:       e.Color,
			Category:    e.Category,
		}
		if errs := draft.Validate(); errs != nil {
			pp.Notice("skipping %s: %s", e.ID, errs.Error())
			continue
		}
		n.Persistence.Add(draft.Event())
		added++
	}

	pp.TitleWithCount("imported", added)
	return nil
}
