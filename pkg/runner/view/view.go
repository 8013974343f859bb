package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calo/pkg/layout"
	"tableflip.dev/calo/pkg/nav"
	"tableflip.dev/calo/pkg/printers"
	"tableflip.dev/calo/pkg/store"
	"tableflip.dev/calo/pkg/ui/calendar"
)

// View renders the calendar anchored by the navigation state: the full
// month or week view, or the compact styled grid.
type View struct {
	State   nav.State
	Now     time.Time
	Compact bool

	Persistence store.Persistence
}

func (n *View) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not view, no persistence")
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	events := n.Persistence.Events(ctx)
	pp := printers.PrettyPrint{}

	if n.Compact {
		cells := layout.MonthCells(n.State.Current, now, events)
		days := calendar.FromCells(cells, n.State.Selected)
		fmt.Println(calendar.Render(n.State.Current, days, compactOptions()))
		return nil
	}

	switch n.State.View {
	case nav.Week:
		pp.Week(n.State.Current, now, events)
	default:
		pp.Month(n.State.Current, now, events)
	}
	return nil
}

func compactOptions() calendar.Options {
	return calendar.Options{
		ShowHeader:    true,
		HeaderStyle:   lipgloss.NewStyle().Faint(true),
		EmptyStyle:    lipgloss.NewStyle().Faint(true),
		EventStyle:    lipgloss.NewStyle().Bold(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
	}
}
