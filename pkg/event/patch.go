package event

import "time"

// Patch is a partial update. Nil fields are left alone; set fields
// replace the existing value as one atomic merge.
type Patch struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Color       *string
	Category    *string
}

// Apply merges the patch into a copy of e and returns it.
func (p Patch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Start != nil {
		e.Start = Timestamp{Time: *p.Start}
	}
	if p.End != nil {
		e.End = Timestamp{Time: *p.End}
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	return e
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Start == nil &&
		p.End == nil && p.Color == nil && p.Category == nil
}
