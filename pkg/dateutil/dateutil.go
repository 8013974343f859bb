// Package dateutil provides the calendar date arithmetic shared by the
// store, layout, and view code. All functions work in local wall-clock
// time; there is no timezone conversion.
package dateutil

import (
	"fmt"
	"time"
)

const msPerDay = 24 * 60 * 60 * 1000

// GridSize is the number of cells in a month grid: six full weeks.
const GridSize = 42

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaysBetween returns the floor of (end - start) in whole 24-hour days.
// The result is negative when end is before start. The math is raw
// elapsed time, not civil-date subtraction, so a range crossing a DST
// transition can be off by one from the calendar-day count.
func DaysBetween(start, end time.Time) int {
	diff := end.UnixMilli() - start.UnixMilli()
	if diff >= 0 {
		return int(diff / msPerDay)
	}
	// Integer division truncates toward zero; floor instead.
	d := diff / msPerDay
	if diff%msPerDay != 0 {
		d--
	}
	return int(d)
}

// DaysInMonth returns every day of the month containing t, ascending,
// each at midnight local time.
func DaysInMonth(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	count := first.AddDate(0, 1, -1).Day()
	days := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

// CalendarGrid returns the 42-cell month grid for the month containing
// t: it starts on the Sunday on/before the 1st and advances one day per
// cell for six full weeks, so the whole month is covered along with
// leading and trailing days of the adjacent months.
func CalendarGrid(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	grid := make([]time.Time, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		grid = append(grid, start.AddDate(0, 0, i))
	}
	return grid
}

// StartOfDay returns t with the time of day zeroed.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on/before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// FormatMonthYear renders the "Month Year" header label, e.g. "March 2024".
func FormatMonthYear(t time.Time) string {
	return t.Format("January 2006")
}

// DayKeyLayout is the wire form of a calendar day, used as the drop
// target identifier handed over by gesture recognizers.
const DayKeyLayout = "2006-01-02"

// DayKey renders t's calendar day as a stable key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey resolves a day key back to midnight local time.
func ParseDayKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil: parse day key %q: %w", s, err)
	}
	return t, nil
}
