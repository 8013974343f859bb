package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/calo/pkg/commands/options"
	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/runner/add"
	"tableflip.dev/calo/pkg/store"
	"tableflip.dev/calo/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	wo := &options.WhenOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to the calendar.",
		Example: `
calo add "Team standup" --start=2024-03-01T09:00 --end=2024-03-01T09:30
calo add "Lunch" --start=2024-03-01T12:00 --category=Personal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := wo.GetStart()
			if err != nil {
				return err
			}
			end, err := wo.GetEnd()
			if err != nil {
				return err
			}
			if end.IsZero() && !start.IsZero() {
				if wo.ForString != "" {
					length, _, err := timeutil.ParseDuration(wo.ForString)
					if err != nil {
						return err
					}
					end = start.Add(length)
				} else {
					end = event.DefaultEnd(start)
				}
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Draft: event.Draft{
					Title:       eo.Title,
					Description: eo.Description,
					Start:       start,
					End:         end,
					Color:       eo.Color,
					Category:    eo.Category,
				},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddWhenArgs(cmd, wo)
	options.AddForArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
