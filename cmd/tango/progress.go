package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kfujisaki/tango/internal/cli"
)

func newProgressCommand(rootCommand *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <deck-id>",
		Short: "Show how far along a deck is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseDeckID(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig(rootCommand)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := db.Close(); closeErr != nil {
					fmt.Fprintf(os.Stderr, "failed to close the database: %+v\n", closeErr)
				}
			}()

			return cli.PrintProgress(ctx, newReviewService(db), os.Stdout, cfg.User.ID, deckID)
		},
	}
}
