// Package review schedules spaced-repetition review of deck terms.
package review

import (
	"errors"
	"fmt"
)

// ErrInvalidRating is returned when a rating is outside 1..4.
var ErrInvalidRating = errors.New("rating must be between 1 and 4")

// Rating is the learner's self-assessed recall quality.
type Rating int

const (
	RatingAgain Rating = 1 // forgot, relearn in a minute
	RatingHard  Rating = 2
	RatingGood  Rating = 3
	RatingEasy  Rating = 4
)

// Validate returns ErrInvalidRating if r is outside the accepted range.
func (r Rating) Validate() error {
	if r < RatingAgain || r > RatingEasy {
		return fmt.Errorf("rating %d: %w", r, ErrInvalidRating)
	}
	return nil
}

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	default:
		return fmt.Sprintf("rating(%d)", int(r))
	}
}
