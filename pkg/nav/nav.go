// Package nav holds the transient calendar navigation state: the date
// anchoring the visible month or week, the active view mode, and the
// highlighted date. It is session state, never persisted, and every
// transition is a pure function of the previous state.
package nav

import "time"

// View is the active calendar view mode.
type View string

const (
	Month View = "month"
	Week  View = "week"
)

// State anchors what the calendar shows.
type State struct {
	Current  time.Time
	View     View
	Selected *time.Time
}

// New returns the state anchored at the given date in month view.
func New(at time.Time) State {
	return State{Current: at, View: Month}
}

// NextMonth moves the anchor to day 1 of the following month. December
// rolls over into January of the next year via date normalization.
func (s State) NextMonth() State {
	s.Current = time.Date(s.Current.Year(), s.Current.Month()+1, 1, 0, 0, 0, 0, s.Current.Location())
	return s
}

// PrevMonth moves the anchor to day 1 of the preceding month.
func (s State) PrevMonth() State {
	s.Current = time.Date(s.Current.Year(), s.Current.Month()-1, 1, 0, 0, 0, 0, s.Current.Location())
	return s
}

// Today re-anchors on the given now.
func (s State) Today(now time.Time) State {
	s.Current = now
	return s
}

// WithView switches the view mode without touching the anchor date.
func (s State) WithView(v View) State {
	s.View = v
	return s
}

// WithSelected sets the highlighted date. Selection affects display
// only; it is not a scheduling input. Pass nil to clear.
func (s State) WithSelected(d *time.Time) State {
	s.Selected = d
	return s
}
