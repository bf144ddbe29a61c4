package review

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kfujisaki/tango/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/review/repository.go -package=mock_review

// ReviewRepository defines persistence operations for review scheduling
// state and the review ledger.
type ReviewRepository interface {
	// FindStates returns the user's review states for every term in the
	// deck, keyed by term ID.
	FindStates(ctx context.Context, userID, deckID int64) (map[int64]ReviewState, error)
	// SaveReview upserts the state row and appends the ledger event as one
	// atomic unit.
	SaveReview(ctx context.Context, state ReviewState, event ReviewEvent) error
	// DeleteByDeck removes all of the user's states and events for the
	// deck's terms as one atomic unit. Deleting nothing is not an error.
	DeleteByDeck(ctx context.Context, userID, deckID int64) error
	// CountReviewed returns how many deck terms the user has ever reviewed.
	CountReviewed(ctx context.Context, userID, deckID int64) (int, error)
}

// DBReviewRepository implements ReviewRepository using MySQL.
type DBReviewRepository struct {
	db *sqlx.DB
}

// NewDBReviewRepository creates a new DBReviewRepository.
func NewDBReviewRepository(db *sqlx.DB) *DBReviewRepository {
	return &DBReviewRepository{db: db}
}

// FindStates returns the user's review states for the deck, keyed by term ID.
func (r *DBReviewRepository) FindStates(ctx context.Context, userID, deckID int64) (map[int64]ReviewState, error) {
	var states []ReviewState
	query := `SELECT d.* FROM user_term_data d
		JOIN terms t ON t.term_id = d.term_id
		WHERE d.user_id = ? AND t.deck_id = ?`
	if err := r.db.SelectContext(ctx, &states, query, userID, deckID); err != nil {
		return nil, fmt.Errorf("load review states of deck %d: %w", deckID, err)
	}

	byTerm := make(map[int64]ReviewState, len(states))
	for _, state := range states {
		byTerm[state.TermID] = state
	}
	return byTerm, nil
}

// SaveReview upserts the scheduling state and appends the review event in a
// single transaction. The upsert takes a row lock on (user_id, term_id), so
// concurrent ratings of the same term serialize here.
func (r *DBReviewRepository) SaveReview(ctx context.Context, state ReviewState, event ReviewEvent) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO user_term_data (user_id, term_id, last_reviewed, next_review, ease_factor, interval_days)
			VALUES (?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				last_reviewed = VALUES(last_reviewed),
				next_review = VALUES(next_review),
				ease_factor = VALUES(ease_factor),
				interval_days = VALUES(interval_days)`,
			state.UserID, state.TermID, state.LastReviewed, state.NextReview, state.EaseFactor, state.Interval)
		if err != nil {
			return fmt.Errorf("upsert review state: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO review_history (user_id, term_id, rating, created_at) VALUES (?, ?, ?, ?)",
			event.UserID, event.TermID, event.Rating, event.CreatedAt)
		if err != nil {
			return fmt.Errorf("append review event: %w", err)
		}
		return nil
	})
}

// DeleteByDeck removes the user's review states and history for every term
// in the deck in a single transaction.
func (r *DBReviewRepository) DeleteByDeck(ctx context.Context, userID, deckID int64) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM user_term_data
			WHERE user_id = ? AND term_id IN (SELECT term_id FROM terms WHERE deck_id = ?)`,
			userID, deckID)
		if err != nil {
			return fmt.Errorf("delete review states of deck %d: %w", deckID, err)
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM review_history
			WHERE user_id = ? AND term_id IN (SELECT term_id FROM terms WHERE deck_id = ?)`,
			userID, deckID)
		if err != nil {
			return fmt.Errorf("delete review history of deck %d: %w", deckID, err)
		}
		return nil
	})
}

// CountReviewed returns the number of deck terms the user has a reviewed
// state for.
func (r *DBReviewRepository) CountReviewed(ctx context.Context, userID, deckID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM user_term_data d
		JOIN terms t ON t.term_id = d.term_id
		WHERE d.user_id = ? AND t.deck_id = ? AND d.last_reviewed IS NOT NULL`
	if err := r.db.GetContext(ctx, &count, query, userID, deckID); err != nil {
		return 0, fmt.Errorf("count reviewed terms of deck %d: %w", deckID, err)
	}
	return count, nil
}
