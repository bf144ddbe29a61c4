package review

import (
	"sort"
	"time"

	"github.com/kfujisaki/tango/internal/deck"
)

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// BuildDueQueue merges a deck's term catalog with the user's review states
// and returns the due cards in priority order: never-reviewed terms first,
// then ascending next-review time, catalog order on ties. Due-ness is
// decided at day granularity, so a card scheduled for 23:59 today is due
// all day. Pure; repeated calls with the same inputs return the same queue.
func BuildDueQueue(terms []deck.Term, states map[int64]ReviewState, now time.Time) []DueCard {
	today := startOfDay(now)

	type queued struct {
		card     DueCard
		reviewed bool
	}

	var queue []queued
	for _, term := range terms {
		card := DueCard{
			TermID:     term.TermID,
			Term:       term.Term,
			Definition: term.Definition,
			NextReview: today,
			EaseFactor: DefaultEaseFactor,
			Interval:   0,
		}

		state, ok := states[term.TermID]
		if !ok {
			queue = append(queue, queued{card: card})
			continue
		}
		if state.NextReview == nil {
			// State without a schedule sorts with the unseen cards but keeps
			// its ease and interval.
			card.EaseFactor = state.EaseFactor
			card.Interval = state.Interval
			queue = append(queue, queued{card: card})
			continue
		}

		if startOfDay(*state.NextReview).After(today) {
			continue
		}
		card.NextReview = *state.NextReview
		card.EaseFactor = state.EaseFactor
		card.Interval = state.Interval
		queue = append(queue, queued{card: card, reviewed: true})
	}

	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].reviewed != queue[j].reviewed {
			return !queue[i].reviewed
		}
		if !queue[i].reviewed {
			return false // both unseen, keep catalog order
		}
		return queue[i].card.NextReview.Before(queue[j].card.NextReview)
	})

	cards := make([]DueCard, len(queue))
	for i, q := range queue {
		cards[i] = q.card
	}
	return cards
}
