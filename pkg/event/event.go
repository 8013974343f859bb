package event

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/calo/pkg/dateutil"
)

// Event is a titled interval of time on the calendar. Identity is ID;
// the store treats the rest of the fields as an atomic record.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       Timestamp `json:"startDate"`
	End         Timestamp `json:"endDate"`
	Color       string    `json:"color,omitempty"`
	Category    string    `json:"category,omitempty"`
}

// New builds an event with a generated id. End defaults to an hour
// after start when the zero time is given.
func New(title string, start, end time.Time) *Event {
	if end.IsZero() {
		end = DefaultEnd(start)
	}
	return &Event{
		ID:    uuid.NewString(),
		Title: title,
		Start: Timestamp{Time: start},
		End:   Timestamp{Time: end},
	}
}

// Duration returns the exact elapsed time between start and end.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start.Time)
}

// On reports whether the event's [start, end] span, with both ends
// normalized to start of day, contains the given date's day. A
// single-day event matches only its own day; a multi-day event matches
// every day in its span.
func (e *Event) On(date time.Time) bool {
	day := dateutil.StartOfDay(date)
	first := dateutil.StartOfDay(e.Start.Time)
	last := dateutil.StartOfDay(e.End.Time)
	return !day.Before(first) && !day.After(last)
}

// DefaultEnd is the end time for an event created from a blank slot.
func DefaultEnd(start time.Time) time.Time {
	return start.Add(time.Hour)
}

// Reschedule moves e to the target calendar day, preserving its time of
// day and exact duration: the new start takes the target's year, month,
// and day with the original start's clock time, and the new end is the
// new start plus the original duration.
func Reschedule(e *Event, target time.Time) (start, end time.Time) {
	d := e.Duration()
	s := e.Start.Time
	start = time.Date(target.Year(), target.Month(), target.Day(),
		s.Hour(), s.Minute(), s.Second(), s.Nanosecond(), s.Location())
	return start, start.Add(d)
}
