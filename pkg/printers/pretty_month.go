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

const gridWidth = len("11 12 13 14 15 16 17") // an example week

// Month renders the month view: the day grid with event days
// highlighted, then each day's agenda showing at most three events and
// an overflow count for the rest.
func (pp *PrettyPrint) Month(current, now time.Time, events []event.Event) {
	cells := layout.MonthCells(current, now, events)

	pp.monthHeader(current)
	pp.monthGrid(cells, now)
	pp.monthAgenda(cells)
}

func (pp *PrettyPrint) monthHeader(current time.Time) {
	tf := color.New(color.FgWhite, color.Italic)
	m := dateutil.FormatMonthYear(current)
	mid := (gridWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)
}

func (pp *PrettyPrint) monthGrid(cells []layout.Cell, now time.Time) {
	faint := color.New(color.Faint, color.FgWhite)
	empty := color.New(color.Faint)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)

	for i, c := range cells {
		printer := empty
		switch {
		case !c.InMonth:
			printer = faint
		case c.IsToday:
			printer = today
		case len(c.Events) > 0:
			printer = busy
		}
		_, _ = printer.Printf("%2d", c.Date.Day())

		if (i+1)%7 == 0 {
			fmt.Print("\n")
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Print("\n")
}

func (pp *PrettyPrint) monthAgenda(cells []layout.Cell) {
	day := color.New(color.Bold)
	faint := color.New(color.Faint)

	for _, c := range cells {
		if !c.InMonth || len(c.Events) == 0 {
			continue
		}
		_, _ = day.Println(formatDay(c.Date))
		for _, e := range c.Visible() {
			fmt.Printf("  %s  %s\n", e.Start.Local().Format("15:04"), e.Title)
		}
		if label := c.OverflowLabel(); label != "" {
			_, _ = faint.Printf("  %s\n", label)
		}
	}
	fmt.Println("")
}
