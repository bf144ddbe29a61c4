package review

import "time"

// Intervals are measured in days; fractions encode sub-day steps.
const (
	// relearnStep and hardStep are the fixed short steps for ratings 1 and 2.
	relearnStep = 1.0 / 1440  // 1 minute
	hardStep    = 3.0 / 1440  // 3 minutes
	goodStep    = 15.0 / 1440 // 15 minutes

	// easyGraduationDays is the jump straight from the learning phase to
	// multi-day review on an easy rating.
	easyGraduationDays = 3

	// learningPhaseMax is the boundary of the sub-10-minute learning phase.
	learningPhaseMax = 10.0 / 1440

	// shortIntervalMax is the threshold above which a multiplicative step on
	// a graduated card snaps to exactly one day instead.
	shortIntervalMax = 30.0 / 1440

	easyGrowthBonus = 1.5

	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	DefaultEaseFactor = 2.5
)

// NextState computes the new interval and ease factor for a rating applied
// to the current scheduling state. It is a pure function; it performs no
// I/O and touches no clock.
func NextState(rating Rating, currentInterval, currentEase float64) (newInterval, newEase float64, err error) {
	if err := rating.Validate(); err != nil {
		return 0, 0, err
	}
	return nextInterval(rating, currentInterval, currentEase), nextEaseFactor(rating, currentEase), nil
}

func nextInterval(rating Rating, currentInterval, easeFactor float64) float64 {
	switch rating {
	case RatingAgain:
		return relearnStep
	case RatingHard:
		return hardStep
	}

	if currentInterval < learningPhaseMax {
		if rating == RatingGood {
			return goodStep
		}
		return easyGraduationDays
	}

	next := currentInterval * easeFactor
	if rating == RatingEasy {
		next *= easyGrowthBonus
	}
	// Tiny multiplicative steps stay as-is; anything past the half-hour mark
	// snaps to exactly one day.
	if next < shortIntervalMax {
		return next
	}
	return 1
}

func nextEaseFactor(rating Rating, easeFactor float64) float64 {
	switch rating {
	case RatingEasy:
		return min(easeFactor+0.2, MaxEaseFactor)
	case RatingGood:
		return easeFactor
	case RatingHard:
		return max(MinEaseFactor, easeFactor-0.15)
	default: // RatingAgain
		return max(MinEaseFactor, easeFactor-0.2)
	}
}

// NextReviewDate returns now plus the interval in days. It does not round
// to a day boundary.
func NextReviewDate(now time.Time, intervalDays float64) time.Time {
	return now.Add(time.Duration(intervalDays * float64(24*time.Hour)))
}
