package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kfujisaki/tango/internal/cli"
)

func newStudyCommand(rootCommand *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "study <deck-id>",
		Short: "Review the cards due today in a deck",
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

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := db.Close(); closeErr != nil {
					fmt.Fprintf(os.Stderr, "failed to close the database: %+v\n", closeErr)
				}
			}()

			studyCLI := cli.NewStudyCLI(newReviewService(db), os.Stdin, os.Stdout)
			return studyCLI.Run(ctx, cfg.User.ID, deckID)
		},
	}
}
