package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/calo/pkg/commands/options"
	"tableflip.dev/calo/pkg/event"
	"tableflip.dev/calo/pkg/runner/edit"
	"tableflip.dev/calo/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	wo := &options.WhenOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of an event.",
		Example: `
calo edit 7f9c2ba4 --title="Renamed event"
calo edit 7f9c2ba4 --start=2024-03-01T10:00 --end=2024-03-01T11:00
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := event.Patch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &eo.Title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &eo.Description
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &eo.Color
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &eo.Category
			}
			if cmd.Flags().Changed("start") {
				start, err := wo.GetStart()
				if err != nil {
					return err
				}
				patch.Start = &start
			}
			if cmd.Flags().Changed("end") {
				end, err := wo.GetEnd()
				if err != nil {
					return err
				}
				patch.End = &end
			}
			if patch.IsZero() {
				return errors.New("nothing to change, set at least one field flag")
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          args[0],
				Patch:       patch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTitleArg(cmd, eo)
	options.AddEventArgs(cmd, eo)
	options.AddWhenArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
