package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calo/pkg/dateutil"
	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/layout"
)

// Week renders one Sunday-start week as seven day columns. Each event
// line shows its clock time plus a duration bar scaled from the week
// layout geometry, so a clamped short event still gets a visible bar.
func (pp *PrettyPrint) Week(current, now time.Time, events []event.Event) {
	days := layout.WeekDays(current)

	header := color.New(color.Bold, color.Underline)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)
	faint := color.New(color.Faint, color.Italic)

	for _, day := range days {
		h := header
		if dateutil.SameDay(day, now) {
			h = today
		}
		_, _ = h.Println(formatDay(day))

		col := layout.DayColumn(day, events)
		if len(col) == 0 {
			_, _ = faint.Println("  none")
			continue
		}
		for _, e := range col {
			box := layout.Geometry(e)
			fmt.Printf("  %s–%s %s %s\n",
				e.Start.Local().Format("15:04"),
				e.End.Local().Format("15:04"),
				durationBar(box),
				e.Title)
		}
	}
	fmt.Println("")
}

// durationBar scales the geometry height into a small block bar, one
// block per half hour of column height.
func durationBar(box layout.Box) string {
	blocks := int(box.Height) / 30
	if blocks < 1 {
		blocks = 1
	}
	if blocks > 16 {
		blocks = 16
	}
	return strings.Repeat("█", blocks)
}
