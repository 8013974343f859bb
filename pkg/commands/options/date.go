// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var whenLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseWhen accepts a date with optional time of day, in local time.
func ParseWhen(s string) (time.Time, error) {
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, try 2006-01-02 or 2006-01-02T15:04", s)
}

// WhenOptions captures the start/end flags of event-creating commands.
type WhenOptions struct {
	StartString string
	EndString   string
	ForString   string
}

func AddWhenArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.StartString, "start", "",
		`Event start, example: --start="2024-03-01T09:00".`)
	cmd.Flags().StringVar(&o.EndString, "end", "",
		`Event end; defaults to an hour after start.`)
}

func AddForArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.ForString, "for", "",
		`Event length instead of --end, example: --for="1h30m".`)
}

func (o *WhenOptions) GetStart() (time.Time, error) {
	if o.StartString == "" {
		return time.Time{}, nil
	}
	return ParseWhen(o.StartString)
}

func (o *WhenOptions) GetEnd() (time.Time, error) {
	if o.EndString == "" {
		return time.Time{}, nil
	}
	return ParseWhen(o.EndString)
}

// OnOptions selects a single day for query commands.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Limit to one day, example: --on="2024-03-01".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := ParseWhen(o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
