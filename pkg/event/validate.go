package event

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FieldErrors maps a field name to its validation message. It
// implements error so runners can return it directly.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "valid"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return strings.Join(parts, "; ")
}

// Draft is user-entered event data before it is accepted into the
// store. Zero times mean the field was not provided.
type Draft struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       string
	Category    string
}

// Validate checks the draft and returns nil when it may be saved.
// Violations come back keyed by field; the save must be blocked and no
// store mutation made while any are present.
func (d Draft) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Title) == "" {
		errs["title"] = "title is required"
	}
	if d.Start.IsZero() {
		errs["startDate"] = "start date is required"
	}
	if d.End.IsZero() {
		errs["endDate"] = "end date is required"
	}
	if !d.Start.IsZero() && !d.End.IsZero() && !d.End.After(d.Start) {
		errs["endDate"] = "end date must be after start date"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Event converts a validated draft into an event, generating an id
// when the draft carries none.
func (d Draft) Event() *Event {
	e := New(d.Title, d.Start, d.End)
	if d.ID != "" {
		e.ID = d.ID
	}
	e.Description = d.Description
	e.Color = d.Color
	e.Category = d.Category
	return e
}
