package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/calo/pkg/ics"
	"tableflip.dev/calo/pkg/store"
)

type Export struct {
	Path string // empty writes to stdout
	Out  io.Writer

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	doc := ics.Export(n.Persistence.Events(ctx))

	if n.Path != "" {
		if err := os.WriteFile(n.Path, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("export: write %s: %w", n.Path, err)
		}
		return nil
	}

	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := io.WriteString(out, doc)
	return err
}
