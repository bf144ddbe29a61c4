package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kfujisaki/tango/internal/cli"
)

func newResetCommand(rootCommand *cobra.Command) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset <deck-id>",
		Short: "Delete all review progress and history for a deck",
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

			resetCLI := cli.NewResetCLI(newReviewService(db), os.Stdin, os.Stdout)
			return resetCLI.Run(ctx, cfg.User.ID, deckID, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}
