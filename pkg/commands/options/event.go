package options

import (
	"github.com/spf13/cobra"
)

// EventOptions captures the descriptive event fields shared by add and
// edit.
type EventOptions struct {
	Title       string
	Description string
	Color       string
	Category    string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Event description.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Display color as hex, example: --color="#3b82f6".`)
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Event category, example: Meeting, Work, Personal.")
}

func AddTitleArg(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Event title.")
}
