// Package calendar renders a compact styled month grid for terminal
// display.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calo/pkg/layout"
)

// Day describes metadata used when rendering one grid cell.
type Day struct {
	Day        int
	HasEvent   bool
	IsToday    bool
	IsSelected bool
}

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EventStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// FromCells converts month-layout cells into renderable day metadata,
// keeping only the in-month cells.
func FromCells(cells []layout.Cell, selected *time.Time) []Day {
	days := make([]Day, 0, len(cells))
	for _, c := range cells {
		if !c.InMonth {
			continue
		}
		d := Day{
			Day:      c.Date.Day(),
			HasEvent: len(c.Events) > 0,
			IsToday:  c.IsToday,
		}
		if selected != nil && selected.Year() == c.Date.Year() &&
			selected.Month() == c.Date.Month() && selected.Day() == c.Date.Day() {
			d.IsSelected = true
		}
		days = append(days, d)
	}
	return days
}

// Render produces a multi-line calendar string for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	firstOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := daysIn(month)

	meta := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			meta[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		header := opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa")
		lines = append(lines, header)
	}

	weekdayOffset := int(firstOfMonth.Weekday()) // Sunday == 0
	rows := ((weekdayOffset + daysInMonth) + 6) / 7
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIndex := row*7 + col
			day := cellIndex - weekdayOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(meta[day], day, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	label := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasEvent {
		style = opts.EventStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(label)
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}
