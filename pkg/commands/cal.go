package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calo/pkg/commands/options"
	"tableflip.dev/calo/pkg/nav"
	"tableflip.dev/calo/pkg/runner/view"
	"tableflip.dev/calo/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	oo := &options.OutputOptions{}
	viewName := string(nav.Month)
	next := false
	prev := false
	compact := false

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Render the calendar month or week view.",
		Example: `
calo cal
calo cal --view=week
calo cal --next
calo cal --date=2024-03-01 --compact
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			state := nav.New(now)

			switch nav.View(viewName) {
			case nav.Month, nav.Week:
				state = state.WithView(nav.View(viewName))
			default:
				return fmt.Errorf("unknown view %q, want month or week", viewName)
			}

			if on, err := no.GetOn(); err != nil {
				return err
			} else if on != nil {
				state = state.Today(*on)
			}
			if next {
				state = state.NextMonth()
			}
			if prev {
				state = state.PrevMonth()
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := view.View{
				State:       state,
				Now:         now,
				Compact:     compact,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&viewName, "view", string(nav.Month),
		"View mode, one of 'month' or 'week'.")
	cmd.Flags().BoolVar(&next, "next", false,
		"Show the month after the anchor date.")
	cmd.Flags().BoolVar(&prev, "prev", false,
		"Show the month before the anchor date.")
	cmd.Flags().BoolVar(&compact, "compact", false,
		"Render the compact month grid.")
	cmd.Flags().StringVar(&no.OnString, "date", "",
		`Anchor date, example: --date="2024-03-01". Defaults to today.`)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
