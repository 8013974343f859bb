// Package ics converts event collections to and from iCalendar, the
// interchange format the rest of the calendar world speaks.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/calo/pkg/event"
)

const prodID = "-//tableflip.dev//calo//EN"

// Export serializes the events as a VCALENDAR document.
func Export(events []event.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		ve.SetStartAt(e.Start.Time)
		ve.SetEndAt(e.End.Time)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Category != "" {
			ve.SetProperty(ical.ComponentPropertyCategories, e.Category)
		}
		if e.Color != "" {
			ve.SetProperty(ical.ComponentProperty("COLOR"), e.Color)
		}
		ve.SetDtStampTime(time.Now())
	}

	return cal.Serialize()
}

// Import parses a VCALENDAR document into events. VEVENTs missing a
// usable time range are skipped; a completely unreadable body is an
// error.
func Import(body []byte) ([]event.Event, error) {
	if len(body) == 0 {
		return nil, errors.New("ics: empty body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ics: parse calendar: %w", err)
	}

	events := make([]event.Event, 0)
	for _, ve := range cal.Events() {
		e, err := fromVEvent(ve)
		if err != nil {
			// Keep parsing the rest; one bad VEVENT should not sink the
			// whole import.
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func fromVEvent(ve *ical.VEvent) (event.Event, error) {
	var e event.Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		e.ID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		e.Category = p.Value
	}
	if p := ve.GetProperty(ical.ComponentProperty("COLOR")); p != nil {
		e.Color = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return e, fmt.Errorf("ics: event %s start: %w", e.ID, err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return e, fmt.Errorf("ics: event %s end: %w", e.ID, err)
	}
	e.Start = event.Timestamp{Time: start}
	e.End = event.Timestamp{Time: end}
	return e, nil
}
