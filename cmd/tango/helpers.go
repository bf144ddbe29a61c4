package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/kfujisaki/tango/internal/config"
	"github.com/kfujisaki/tango/internal/database"
	"github.com/kfujisaki/tango/internal/deck"
	"github.com/kfujisaki/tango/internal/review"
)

const databaseReadyAttempts = 5

func loadConfig(rootCommand *cobra.Command) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	if err := loader.BindFlag("user.id", rootCommand.PersistentFlags().Lookup("user")); err != nil {
		return nil, err
	}
	return loader.Load()
}

// openDatabase connects to MySQL, waits until it accepts queries, and makes
// sure the schema exists.
func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.WaitForReady(ctx, db, databaseReadyAttempts); err != nil {
		return nil, fmt.Errorf("database.WaitForReady() > %w", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("database.EnsureSchema() > %w", err)
	}
	return db, nil
}

func newReviewService(db *sqlx.DB) *review.Service {
	return review.NewService(deck.NewDBDeckRepository(db), review.NewDBReviewRepository(db))
}

func parseDeckID(arg string) (int64, error) {
	deckID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid deck ID %q: %w", arg, err)
	}
	return deckID, nil
}
