package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kfujisaki/tango/internal/cli"
	"github.com/kfujisaki/tango/internal/review"
)

func newPreviewCommand() *cobra.Command {
	var interval float64
	var easeFactor float64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show what each rating would do to a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interval arithmetic needs no storage.
			service := review.NewService(nil, nil)
			return cli.PrintPreview(service, os.Stdout, interval, easeFactor)
		},
	}
	cmd.Flags().Float64Var(&interval, "interval", 0, "Current interval in days")
	cmd.Flags().Float64Var(&easeFactor, "ease", review.DefaultEaseFactor, "Current ease factor")
	return cmd
}
