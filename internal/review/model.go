package review

import "time"

// ReviewState is the per (user, term) scheduling record. It is created
// lazily on the first rating and mutated in place afterwards; only a deck
// reset removes it.
type ReviewState struct {
	UserID       int64      `db:"user_id"`
	TermID       int64      `db:"term_id"`
	LastReviewed *time.Time `db:"last_reviewed"`
	NextReview   *time.Time `db:"next_review"`
	EaseFactor   float64    `db:"ease_factor"`
	Interval     float64    `db:"interval_days"`
}

// ReviewEvent is one append-only review ledger entry.
type ReviewEvent struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	TermID    int64     `db:"term_id"`
	Rating    Rating    `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

// DueCard is a term joined with its effective scheduling fields. Terms
// without a ReviewState carry the defaults (due at the start of today,
// ease 2.5, interval 0). Derived, never persisted.
type DueCard struct {
	TermID     int64
	Term       string
	Definition string
	NextReview time.Time
	EaseFactor float64
	Interval   float64
}

// Progress summarizes a user's standing in a deck.
type Progress struct {
	Reviewed int
	Total    int
	DueCount int
}

// RateResult is what a single rating produced.
type RateResult struct {
	NextReview time.Time
	EaseFactor float64
	Interval   float64
}

// IntervalPreview is the outcome a rating would have, without committing it.
type IntervalPreview struct {
	Days float64
	Date time.Time
}
