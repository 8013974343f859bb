// Package layout computes the visual placement of events on calendar
// grids. Everything here is derived data: it is recomputed from the
// event collection on every render and never cached, so mutations show
// up immediately.
package layout

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/calo/pkg/dateutil"
	"tableflip.dev/calo/pkg/event"
)

const (
	// MaxVisible is how many events a month cell shows individually
	// before collapsing the remainder into an overflow count.
	MaxVisible = 3

	// MinHeight is the smallest week-view event height in units, so
	// short events stay visible and clickable.
	MinHeight = 24

	// DayHeight is the height of a full week-view day column: 24 hours
	// at 60 units per hour, one unit per minute.
	DayHeight = 24 * 60
)

// Cell is one day slot of the month grid.
type Cell struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Events  []event.Event
}

// MonthCells derives the 42 cells of the month grid anchored at
// current. Each cell carries the events whose day span covers it,
// sorted ascending by start time; the sort is stable so equal starts
// keep collection order.
func MonthCells(current, now time.Time, events []event.Event) []Cell {
	grid := dateutil.CalendarGrid(current)
	cells := make([]Cell, 0, len(grid))
	for _, day := range grid {
		cells = append(cells, Cell{
			Date:    day,
			InMonth: day.Month() == current.Month() && day.Year() == current.Year(),
			IsToday: dateutil.SameDay(day, now),
			Events:  eventsOn(events, day),
		})
	}
	return cells
}

// Visible returns up to MaxVisible events for individual display.
func (c Cell) Visible() []event.Event {
	if len(c.Events) <= MaxVisible {
		return c.Events
	}
	return c.Events[:MaxVisible]
}

// Overflow is the count of events beyond the visible ones.
func (c Cell) Overflow() int {
	if n := len(c.Events) - MaxVisible; n > 0 {
		return n
	}
	return 0
}

// OverflowLabel renders the overflow indicator, e.g. "+2 more". It is
// empty when everything fits.
func (c Cell) OverflowLabel() string {
	if n := c.Overflow(); n > 0 {
		return fmt.Sprintf("+%d more", n)
	}
	return ""
}

// Box is the vertical geometry of one event in a week-view day column,
// in minute units from the top of the 1440-unit day.
type Box struct {
	Top    float64
	Height float64
}

// Geometry places an event in its day column: the top edge sits at the
// start's minutes-past-midnight and the height is the duration in
// minutes, clamped to MinHeight. Overlapping events are not assigned
// lanes; they stack in paint order.
func Geometry(e event.Event) Box {
	startHour := float64(e.Start.Hour()) + float64(e.Start.Minute())/60
	endHour := float64(e.End.Hour()) + float64(e.End.Minute())/60

	h := (endHour - startHour) * 60
	if h < MinHeight {
		h = MinHeight
	}
	return Box{Top: startHour * 60, Height: h}
}

// WeekDays returns the seven days of the Sunday-start week containing t.
func WeekDays(t time.Time) [7]time.Time {
	var days [7]time.Time
	start := dateutil.StartOfWeek(t)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DayColumn returns the events starting on the given day, sorted by
// start time, for one week-view column.
func DayColumn(day time.Time, events []event.Event) []event.Event {
	col := make([]event.Event, 0)
	for _, e := range events {
		if dateutil.SameDay(e.Start.Time, day) {
			col = append(col, e)
		}
	}
	sortByStart(col)
	return col
}

func eventsOn(events []event.Event, day time.Time) []event.Event {
	on := make([]event.Event, 0)
	for _, e := range events {
		if e.On(day) {
			on = append(on, e)
		}
	}
	sortByStart(on)
	return on
}

func sortByStart(events []event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start.Time)
	})
}
