package deck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a referenced deck does not exist.
var ErrNotFound = errors.New("deck not found")

//go:generate mockgen -source=repository.go -destination=../mocks/deck/repository.go -package=mock_deck

// DeckRepository defines read operations on the deck/term catalog.
type DeckRepository interface {
	Find(ctx context.Context, deckID int64) (Deck, error)
	FindTerms(ctx context.Context, deckID int64) ([]Term, error)
	CountTerms(ctx context.Context, deckID int64) (int, error)
}

// DBDeckRepository implements DeckRepository using MySQL.
type DBDeckRepository struct {
	db *sqlx.DB
}

// NewDBDeckRepository creates a new DBDeckRepository.
func NewDBDeckRepository(db *sqlx.DB) *DBDeckRepository {
	return &DBDeckRepository{db: db}
}

// Find returns the deck with the given ID, or ErrNotFound.
func (r *DBDeckRepository) Find(ctx context.Context, deckID int64) (Deck, error) {
	var d Deck
	if err := r.db.GetContext(ctx, &d, "SELECT * FROM decks WHERE deck_id = ?", deckID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Deck{}, fmt.Errorf("deck %d: %w", deckID, ErrNotFound)
		}
		return Deck{}, fmt.Errorf("load deck %d: %w", deckID, err)
	}
	return d, nil
}

// FindTerms returns all terms in the deck in catalog order.
func (r *DBDeckRepository) FindTerms(ctx context.Context, deckID int64) ([]Term, error) {
	var terms []Term
	if err := r.db.SelectContext(ctx, &terms, "SELECT * FROM terms WHERE deck_id = ? ORDER BY term_id", deckID); err != nil {
		return nil, fmt.Errorf("load terms of deck %d: %w", deckID, err)
	}
	return terms, nil
}

// CountTerms returns the number of terms in the deck.
func (r *DBDeckRepository) CountTerms(ctx context.Context, deckID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM terms WHERE deck_id = ?", deckID); err != nil {
		return 0, fmt.Errorf("count terms of deck %d: %w", deckID, err)
	}
	return count, nil
}
