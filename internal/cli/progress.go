package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/kfujisaki/tango/internal/review"
)

// PrintProgress reports cumulative progress for a deck: how many terms were
// ever reviewed and how many are due right now.
func PrintProgress(ctx context.Context, service StudyService, out io.Writer, userID, deckID int64) error {
	session, err := service.LoadMore(ctx, userID, deckID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	fmt.Fprintf(out, "%s: %d of %d terms reviewed, %d due\n",
		session.Deck.Name, session.Progress.Reviewed, session.Progress.Total, session.Progress.DueCount)
	return nil
}

// PrintPreview shows what each rating would do to a card with the given
// current interval and ease factor.
func PrintPreview(service StudyService, out io.Writer, interval, easeFactor float64) error {
	previews, err := service.PreviewNextIntervals(interval, easeFactor)
	if err != nil {
		return fmt.Errorf("preview intervals: %w", err)
	}

	for rating := review.RatingAgain; rating <= review.RatingEasy; rating++ {
		preview := previews[rating]
		fmt.Fprintf(out, "%d (%s): %s, next review %s\n",
			int(rating), rating, FormatInterval(preview.Days), preview.Date.Format("2006-01-02 15:04"))
	}
	return nil
}
