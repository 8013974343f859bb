package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calo/pkg/commands/options"
	"tableflip.dev/calo/pkg/runner/export"
	"tableflip.dev/calo/pkg/runner/importer"
	"tableflip.dev/calo/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all events as iCalendar.",
		Example: `
calo export
calo export calendar.ics
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Persistence: p,
			}
			if len(args) == 1 {
				s.Path = args[0]
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from an iCalendar file.",
		Example: `
calo import calendar.ics
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := importer.Import{
				Path:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
