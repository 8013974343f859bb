package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calo/pkg/commands/options"
	"tableflip.dev/calo/pkg/runner/move"
	"tableflip.dev/calo/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "move <id> <day>",
		Short: "Move an event to another day, keeping its time and duration.",
		Example: `
calo move 7f9c2ba4 2024-03-05
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				ID:          args[0],
				To:          args[1],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
