package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calo/pkg/commands/options"
	"tableflip.dev/calo/pkg/runner/get"
	"tableflip.dev/calo/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	no := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List events.",
		Example: `
calo get
calo get --on=2024-03-01
calo get --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				JSON:        oo.JSON,
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOnArgs(cmd, no)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
