package review

import (
	"context"
	"fmt"
	"time"

	"github.com/kfujisaki/tango/internal/deck"
)

// Service orchestrates review sessions over the deck catalog and the
// review state store.
type Service struct {
	decks   deck.DeckRepository
	reviews ReviewRepository
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service.
func NewService(decks deck.DeckRepository, reviews ReviewRepository, opts ...Option) *Service {
	s := &Service{
		decks:   decks,
		reviews: reviews,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session is a study session view of one deck: its due queue and progress.
type Session struct {
	Deck     deck.Deck
	DueCards []DueCard
	Progress Progress
}

// InitializeSession starts a fresh session: the due queue, the deck
// summary, and progress with the session review counter at zero. The
// cumulative reviewed count is available through LoadMore.
func (s *Service) InitializeSession(ctx context.Context, userID, deckID int64) (*Session, error) {
	return s.buildSession(ctx, userID, deckID, 0)
}

// LoadMore re-resolves the due queue and reports cumulative progress,
// counting every term the user has ever reviewed in the deck.
func (s *Service) LoadMore(ctx context.Context, userID, deckID int64) (*Session, error) {
	reviewed, err := s.reviews.CountReviewed(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}
	return s.buildSession(ctx, userID, deckID, reviewed)
}

// Rate applies a rating to one term: it runs the interval policy on the
// caller-supplied current interval and ease factor, persists the resulting
// state, and appends a review event, all as one atomic write. The rating is
// validated before anything is touched.
func (s *Service) Rate(ctx context.Context, userID, termID int64, rating Rating, currentInterval, currentEase float64) (RateResult, error) {
	newInterval, newEase, err := NextState(rating, currentInterval, currentEase)
	if err != nil {
		return RateResult{}, err
	}

	now := s.now()
	nextReview := NextReviewDate(now, newInterval)
	state := ReviewState{
		UserID:       userID,
		TermID:       termID,
		LastReviewed: &now,
		NextReview:   &nextReview,
		EaseFactor:   newEase,
		Interval:     newInterval,
	}
	event := ReviewEvent{
		UserID:    userID,
		TermID:    termID,
		Rating:    rating,
		CreatedAt: now,
	}
	if err := s.reviews.SaveReview(ctx, state, event); err != nil {
		return RateResult{}, fmt.Errorf("save review of term %d: %w", termID, err)
	}

	return RateResult{
		NextReview: nextReview,
		EaseFactor: newEase,
		Interval:   newInterval,
	}, nil
}

// ResetProgress deletes the user's scheduling state and review history for
// the deck and returns the resulting fresh session. Resetting an
// unreviewed deck succeeds; a missing deck is deck.ErrNotFound.
func (s *Service) ResetProgress(ctx context.Context, userID, deckID int64) (*Session, error) {
	if _, err := s.decks.Find(ctx, deckID); err != nil {
		return nil, err
	}
	if err := s.reviews.DeleteByDeck(ctx, userID, deckID); err != nil {
		return nil, fmt.Errorf("reset progress of deck %d: %w", deckID, err)
	}
	return s.buildSession(ctx, userID, deckID, 0)
}

// PreviewNextIntervals runs the interval policy for every rating against
// the supplied current values without persisting anything. The caller can
// show "if you rate this X, the next review is Y" before committing.
func (s *Service) PreviewNextIntervals(currentInterval, currentEase float64) (map[Rating]IntervalPreview, error) {
	now := s.now()
	previews := make(map[Rating]IntervalPreview, 4)
	for rating := RatingAgain; rating <= RatingEasy; rating++ {
		interval, _, err := NextState(rating, currentInterval, currentEase)
		if err != nil {
			return nil, err
		}
		previews[rating] = IntervalPreview{
			Days: interval,
			Date: NextReviewDate(now, interval),
		}
	}
	return previews, nil
}

func (s *Service) buildSession(ctx context.Context, userID, deckID int64, reviewed int) (*Session, error) {
	d, err := s.decks.Find(ctx, deckID)
	if err != nil {
		return nil, err
	}
	terms, err := s.decks.FindTerms(ctx, deckID)
	if err != nil {
		return nil, err
	}
	states, err := s.reviews.FindStates(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	dueCards := BuildDueQueue(terms, states, s.now())
	return &Session{
		Deck:     d,
		DueCards: dueCards,
		Progress: Progress{
			Reviewed: reviewed,
			Total:    len(terms),
			DueCount: len(dueCards),
		},
	}, nil
}
