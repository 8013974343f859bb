package layout

import (
	"testing"
	"time"

	"tableflip.dev/calo/pkg/event"
)

func ev(id string, start, end time.Time) event.Event {
	return event.Event{
		ID:    id,
		Title: id,
		Start: event.Timestamp{Time: start},
		End:   event.Timestamp{Time: end},
	}
}

func TestMonthCellOverflow(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	events := make([]event.Event, 0, 5)
	for i := 4; i >= 0; i-- {
		start := day.Add(time.Duration(9+i) * time.Hour)
		events = append(events, ev(string(rune('a'+i)), start, start.Add(time.Hour)))
	}

	cells := MonthCells(day, day, events)

	var cell Cell
	found := false
	for _, c := range cells {
		if c.Date.Day() == 15 && c.InMonth {
			cell, found = c, true
			break
		}
	}
	if !found {
		t.Fatal("day 15 not in grid")
	}

	visible := cell.Visible()
	if len(visible) != MaxVisible {
		t.Fatalf("got %d visible events, want %d", len(visible), MaxVisible)
	}
	// Sorted ascending by start regardless of insertion order.
	if visible[0].ID != "a" || visible[1].ID != "b" || visible[2].ID != "c" {
		t.Fatalf("visible order = %s,%s,%s; want a,b,c", visible[0].ID, visible[1].ID, visible[2].ID)
	}
	if cell.Overflow() != 2 {
		t.Fatalf("overflow = %d, want 2", cell.Overflow())
	}
	if cell.OverflowLabel() != "+2 more" {
		t.Fatalf("label = %q, want %q", cell.OverflowLabel(), "+2 more")
	}
}

func TestMonthCellNoOverflowLabel(t *testing.T) {
	day := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	cells := MonthCells(day, day, []event.Event{ev("a", day, day.Add(time.Hour))})
	for _, c := range cells {
		if c.OverflowLabel() != "" {
			t.Fatalf("unexpected overflow label %q on %v", c.OverflowLabel(), c.Date)
		}
	}
}

func TestMonthCellSortIsStable(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	start := day.Add(9 * time.Hour)
	events := []event.Event{
		ev("first", start, start.Add(time.Hour)),
		ev("second", start, start.Add(2*time.Hour)),
	}
	cells := MonthCells(day, day, events)
	for _, c := range cells {
		if c.Date.Day() == 15 && c.InMonth {
			if c.Events[0].ID != "first" || c.Events[1].ID != "second" {
				t.Fatalf("equal starts reordered: %s, %s", c.Events[0].ID, c.Events[1].ID)
			}
			return
		}
	}
	t.Fatal("day 15 not in grid")
}

func TestMonthCellFlags(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2024, 3, 20, 14, 0, 0, 0, time.Local)
	cells := MonthCells(anchor, now, nil)

	if len(cells) != 42 {
		t.Fatalf("got %d cells, want 42", len(cells))
	}
	inMonth := 0
	todays := 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
		if c.IsToday {
			todays++
			if c.Date.Day() != 20 {
				t.Errorf("today flag on %v", c.Date)
			}
		}
	}
	if inMonth != 31 {
		t.Errorf("in-month cells = %d, want 31", inMonth)
	}
	if todays != 1 {
		t.Errorf("today flagged %d times, want 1", todays)
	}
}

func TestGeometry(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	tests := []struct {
		name       string
		start, end time.Time
		top, h     float64
	}{
		{"one hour", day.Add(10 * time.Hour), day.Add(11 * time.Hour), 600, 60},
		{"half past", day.Add(9*time.Hour + 30*time.Minute), day.Add(10 * time.Hour), 570, 30},
		{"short clamps", day.Add(10 * time.Hour), day.Add(10*time.Hour + 15*time.Minute), 600, MinHeight},
		{"midnight", day, day.Add(2 * time.Hour), 0, 120},
	}
	for _, tc := range tests {
		box := Geometry(ev("x", tc.start, tc.end))
		if box.Top != tc.top || box.Height != tc.h {
			t.Errorf("%s: got top=%v height=%v, want top=%v height=%v",
				tc.name, box.Top, box.Height, tc.top, tc.h)
		}
	}
}

func TestGeometryFitsDayColumn(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	box := Geometry(ev("late", day.Add(23*time.Hour), day.Add(23*time.Hour+59*time.Minute)))
	if box.Top+box.Height > DayHeight {
		t.Fatalf("event exceeds day column: top=%v height=%v", box.Top, box.Height)
	}
}

func TestWeekDays(t *testing.T) {
	wed := time.Date(2024, 3, 6, 15, 0, 0, 0, time.Local)
	days := WeekDays(wed)
	if days[0].Weekday() != time.Sunday {
		t.Fatalf("week starts on %v, want Sunday", days[0].Weekday())
	}
	if days[6].Weekday() != time.Saturday {
		t.Fatalf("week ends on %v, want Saturday", days[6].Weekday())
	}
	if days[3].Day() != 6 {
		t.Fatalf("anchor day not in week: %v", days[3])
	}
}

func TestDayColumnFiltersByStartDay(t *testing.T) {
	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local)
	events := []event.Event{
		ev("today", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		ev("late", day.Add(8*time.Hour), day.Add(9*time.Hour)),
		ev("tomorrow", day.AddDate(0, 0, 1).Add(9*time.Hour), day.AddDate(0, 0, 1).Add(10*time.Hour)),
	}
	col := DayColumn(day, events)
	if len(col) != 2 {
		t.Fatalf("got %d events, want 2", len(col))
	}
	if col[0].ID != "late" || col[1].ID != "today" {
		t.Fatalf("column order = %s,%s; want late,today", col[0].ID, col[1].ID)
	}
}
