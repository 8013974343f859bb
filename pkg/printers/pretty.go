package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calo/pkg/event"
)

type PrettyPrint struct {
	ShowID bool
}

const clockLayout = "Jan _2 15:04"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Events renders a table of events in the order given.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "START", "END", "TITLE", "CATEGORY")
	} else {
		table.AddRow("START", "END", "TITLE", "CATEGORY")
	}
	for _, e := range events {
		start := e.Start.Local().Format(clockLayout)
		end := e.End.Local().Format(clockLayout)
		if e.Start.SameDay(e.End.Time) {
			end = e.End.Local().Format("15:04")
		}
		if pp.ShowID {
			table.AddRow(e.ID, start, end, e.Title, e.Category)
		} else {
			table.AddRow(start, end, e.Title, e.Category)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Errors renders a field-keyed validation error map.
func (pp *PrettyPrint) Errors(errs event.FieldErrors) {
	r := color.New(color.FgRed)
	for field, msg := range errs {
		_, _ = r.Printf("  %s: %s\n", field, msg)
	}
}

// Notice renders a faint informational line.
func (pp *PrettyPrint) Notice(format string, args ...interface{}) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf(format+"\n", args...)
}

func formatDay(t time.Time) string {
	return t.Format("Mon Jan _2")
}
