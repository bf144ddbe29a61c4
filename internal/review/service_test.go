package review_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kfujisaki/tango/internal/deck"
	mock_deck "github.com/kfujisaki/tango/internal/mocks/deck"
	mock_review "github.com/kfujisaki/tango/internal/mocks/review"
	"github.com/kfujisaki/tango/internal/review"
)

var testNow = time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)

func newTestService(t *testing.T) (*review.Service, *mock_deck.MockDeckRepository, *mock_review.MockReviewRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	decks := mock_deck.NewMockDeckRepository(ctrl)
	reviews := mock_review.NewMockReviewRepository(ctrl)
	svc := review.NewService(decks, reviews, review.WithClock(func() time.Time { return testNow }))
	return svc, decks, reviews
}

func testDeck() deck.Deck {
	return deck.Deck{DeckID: 3, UserID: 1, Name: "N5 Vocabulary"}
}

func testTerms() []deck.Term {
	return []deck.Term{
		{TermID: 10, DeckID: 3, Term: "犬", Definition: "dog"},
		{TermID: 11, DeckID: 3, Term: "猫", Definition: "cat"},
		{TermID: 12, DeckID: 3, Term: "鳥", Definition: "bird"},
	}
}

func TestService_InitializeSession(t *testing.T) {
	t.Run("fresh deck has every term due and session progress at zero", func(t *testing.T) {
		svc, decks, reviews := newTestService(t)
		decks.EXPECT().Find(gomock.Any(), int64(3)).Return(testDeck(), nil)
		decks.EXPECT().FindTerms(gomock.Any(), int64(3)).Return(testTerms(), nil)
		reviews.EXPECT().FindStates(gomock.Any(), int64(1), int64(3)).Return(nil, nil)

		got, err := svc.InitializeSession(context.Background(), 1, 3)
		require.NoError(t, err)

		assert.Equal(t, "N5 Vocabulary", got.Deck.Name)
		require.Len(t, got.DueCards, 3)
		assert.Equal(t, review.Progress{Reviewed: 0, Total: 3, DueCount: 3}, got.Progress)
		assert.Equal(t, int64(10), got.DueCards[0].TermID)
		assert.Equal(t, review.DefaultEaseFactor, got.DueCards[0].EaseFactor)
	})

	t.Run("session progress stays zero even with review history", func(t *testing.T) {
		svc, decks, reviews := newTestService(t)
		lastWeek := testNow.AddDate(0, 0, -7)
		states := map[int64]review.ReviewState{
			10: {UserID: 1, TermID: 10, LastReviewed: &lastWeek, NextReview: &lastWeek, EaseFactor: 2.3, Interval: 1},
		}
		decks.EXPECT().Find(gomock.Any(), int64(3)).Return(testDeck(), nil)
		decks.EXPECT().FindTerms(gomock.Any(), int64(3)).Return(testTerms(), nil)
		reviews.EXPECT().FindStates(gomock.Any(), int64(1), int64(3)).Return(states, nil)

		got, err := svc.InitializeSession(context.Background(), 1, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Progress.Reviewed)
		assert.Equal(t, 3, got.Progress.Total)
	})

	t.Run("missing deck", func(t *testing.T) {
		svc, decks, _ := newTestService(t)
		decks.EXPECT().Find(gomock.Any(), int64(99)).Return(deck.Deck{}, deck.ErrNotFound)

		_, err := svc.InitializeSession(context.Background(), 1, 99)
		assert.ErrorIs(t, err, deck.ErrNotFound)
	})
}

func TestService_LoadMore(t *testing.T) {
	svc, decks, reviews := newTestService(t)
	tomorrow := testNow.AddDate(0, 0, 1)
	states := map[int64]review.ReviewState{
		10: {UserID: 1, TermID: 10, LastReviewed: &testNow, NextReview: &tomorrow, EaseFactor: 2.5, Interval: 1},
	}
	reviews.EXPECT().CountReviewed(gomock.Any(), int64(1), int64(3)).Return(1, nil)
	decks.EXPECT().Find(gomock.Any(), int64(3)).Return(testDeck(), nil)
	decks.EXPECT().FindTerms(gomock.Any(), int64(3)).Return(testTerms(), nil)
	reviews.EXPECT().FindStates(gomock.Any(), int64(1), int64(3)).Return(states, nil)

	got, err := svc.LoadMore(context.Background(), 1, 3)
	require.NoError(t, err)

	// Cumulative progress, and the freshly scheduled card is no longer due.
	assert.Equal(t, review.Progress{Reviewed: 1, Total: 3, DueCount: 2}, got.Progress)
	require.Len(t, got.DueCards, 2)
	assert.Equal(t, int64(11), got.DueCards[0].TermID)
	assert.Equal(t, int64(12), got.DueCards[1].TermID)
}

func TestService_Rate(t *testing.T) {
	t.Run("persists policy output and appends the event atomically", func(t *testing.T) {
		svc, _, reviews := newTestService(t)

		var savedState review.ReviewState
		var savedEvent review.ReviewEvent
		reviews.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, state review.ReviewState, event review.ReviewEvent) error {
				savedState = state
				savedEvent = event
				return nil
			})

		got, err := svc.Rate(context.Background(), 1, 10, review.RatingEasy, 0, 2.5)
		require.NoError(t, err)

		// Easy from an unseen card graduates straight to three days.
		assert.Equal(t, float64(3), got.Interval)
		assert.Equal(t, 2.5, got.EaseFactor)
		assert.Equal(t, testNow.Add(72*time.Hour), got.NextReview)

		assert.Equal(t, int64(1), savedState.UserID)
		assert.Equal(t, int64(10), savedState.TermID)
		require.NotNil(t, savedState.LastReviewed)
		assert.Equal(t, testNow, *savedState.LastReviewed)
		require.NotNil(t, savedState.NextReview)
		assert.Equal(t, got.NextReview, *savedState.NextReview)
		assert.Equal(t, got.Interval, savedState.Interval)

		assert.Equal(t, review.RatingEasy, savedEvent.Rating)
		assert.Equal(t, testNow, savedEvent.CreatedAt)
	})

	t.Run("uses the caller-supplied interval and ease as policy input", func(t *testing.T) {
		svc, _, reviews := newTestService(t)
		reviews.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		// A graduated card: the caller passes its last-known values.
		got, err := svc.Rate(context.Background(), 1, 10, review.RatingGood, 14.0/1440, 2.0)
		require.NoError(t, err)
		assert.InDelta(t, 28.0/1440, got.Interval, 1e-12)
		assert.Equal(t, 2.0, got.EaseFactor)
	})

	t.Run("invalid rating is rejected before any write", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Rate(context.Background(), 1, 10, review.Rating(5), 0, 2.5)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})

	t.Run("persistence failure surfaces", func(t *testing.T) {
		svc, _, reviews := newTestService(t)
		reviews.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("commit transaction: disk full"))

		_, err := svc.Rate(context.Background(), 1, 10, review.RatingGood, 0, 2.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save review")
	})

	t.Run("concurrent ratings of different terms both persist", func(t *testing.T) {
		svc, _, reviews := newTestService(t)

		var mu sync.Mutex
		saved := map[int64]review.ReviewState{}
		reviews.EXPECT().SaveReview(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, state review.ReviewState, _ review.ReviewEvent) error {
				mu.Lock()
				defer mu.Unlock()
				saved[state.TermID] = state
				return nil
			})

		var wg sync.WaitGroup
		for _, termID := range []int64{10, 11} {
			termID := termID
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Rate(context.Background(), 1, termID, review.RatingGood, 0, 2.5)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		require.Len(t, saved, 2)
		assert.InDelta(t, 15.0/1440, saved[10].Interval, 1e-12)
		assert.InDelta(t, 15.0/1440, saved[11].Interval, 1e-12)
	})
}

func TestService_ResetProgress(t *testing.T) {
	t.Run("clears state and returns a fresh session", func(t *testing.T) {
		svc, decks, reviews := newTestService(t)
		gomock.InOrder(
			decks.EXPECT().Find(gomock.Any(), int64(3)).Return(testDeck(), nil),
			reviews.EXPECT().DeleteByDeck(gomock.Any(), int64(1), int64(3)).Return(nil),
			decks.EXPECT().Find(gomock.Any(), int64(3)).Return(testDeck(), nil),
			decks.EXPECT().FindTerms(gomock.Any(), int64(3)).Return(testTerms(), nil),
			reviews.EXPECT().FindStates(gomock.Any(), int64(1), int64(3)).Return(nil, nil),
		)

		got, err := svc.ResetProgress(context.Background(), 1, 3)
		require.NoError(t, err)
		assert.Equal(t, review.Progress{Reviewed: 0, Total: 3, DueCount: 3}, got.Progress)
		require.Len(t, got.DueCards, 3)
	})

	t.Run("missing deck fails before deleting anything", func(t *testing.T) {
		svc, decks, _ := newTestService(t)
		decks.EXPECT().Find(gomock.Any(), int64(99)).Return(deck.Deck{}, deck.ErrNotFound)

		_, err := svc.ResetProgress(context.Background(), 1, 99)
		assert.ErrorIs(t, err, deck.ErrNotFound)
	})

	t.Run("delete failure surfaces", func(t *testing.T) {
		svc, decks, reviews := newTestService(t)
		decks.EXPECT().Find(gomock.Any(), int64(3)).Return(testDeck(), nil)
		reviews.EXPECT().DeleteByDeck(gomock.Any(), int64(1), int64(3)).
			Return(fmt.Errorf("rollback transaction"))

		_, err := svc.ResetProgress(context.Background(), 1, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reset progress")
	})
}

func TestService_PreviewNextIntervals(t *testing.T) {
	svc, _, _ := newTestService(t)

	got, err := svc.PreviewNextIntervals(0, 2.5)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.InDelta(t, 1.0/1440, got[review.RatingAgain].Days, 1e-12)
	assert.InDelta(t, 3.0/1440, got[review.RatingHard].Days, 1e-12)
	assert.InDelta(t, 15.0/1440, got[review.RatingGood].Days, 1e-12)
	assert.Equal(t, float64(3), got[review.RatingEasy].Days)
	assert.Equal(t, testNow.Add(time.Minute), got[review.RatingAgain].Date)
	assert.Equal(t, testNow.Add(72*time.Hour), got[review.RatingEasy].Date)
}
