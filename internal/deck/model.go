// Package deck provides read access to deck and term catalogs.
package deck

import "time"

// Deck is a named collection of terms owned by a user.
type Deck struct {
	DeckID    int64     `db:"deck_id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"deck_name"`
	IsPublic  bool      `db:"is_public"`
	CreatedAt time.Time `db:"created_at"`
}

// Term is a vocabulary entry in a deck. Terms are immutable here; editing
// them belongs to the catalog CRUD, not to review scheduling.
type Term struct {
	TermID     int64     `db:"term_id"`
	DeckID     int64     `db:"deck_id"`
	Term       string    `db:"term"`
	Definition string    `db:"definition"`
	CreatedAt  time.Time `db:"created_at"`
}
