// Package cli provides the interactive study session commands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kfujisaki/tango/internal/review"
)

//go:generate mockgen -source=study.go -destination=../mocks/cli/study.go -package=mock_cli

// StudyService is what the study session needs from the review core.
type StudyService interface {
	InitializeSession(ctx context.Context, userID, deckID int64) (*review.Session, error)
	LoadMore(ctx context.Context, userID, deckID int64) (*review.Session, error)
	Rate(ctx context.Context, userID, termID int64, rating review.Rating, currentInterval, currentEase float64) (review.RateResult, error)
	ResetProgress(ctx context.Context, userID, deckID int64) (*review.Session, error)
	PreviewNextIntervals(currentInterval, currentEase float64) (map[review.Rating]review.IntervalPreview, error)
}

// StudyCLI manages the interactive review session for one deck.
type StudyCLI struct {
	service StudyService
	stdin   *bufio.Reader
	out     io.Writer

	bold   *color.Color
	italic *color.Color
}

// NewStudyCLI creates a new study session CLI.
func NewStudyCLI(service StudyService, stdin io.Reader, out io.Writer) *StudyCLI {
	return &StudyCLI{
		service: service,
		stdin:   bufio.NewReader(stdin),
		out:     out,
		bold:    color.New(color.Bold),
		italic:  color.New(color.Italic),
	}
}

// Run drives one study session: show each due card, reveal its definition,
// preview the four candidate intervals, read a rating, and persist it.
// When the queue is exhausted it offers to load more due cards. Returns nil
// when the user quits or the context is canceled.
func (c *StudyCLI) Run(ctx context.Context, userID, deckID int64) error {
	session, err := c.service.InitializeSession(ctx, userID, deckID)
	if err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}

	fmt.Fprintf(c.out, "Studying %s: %d due of %d terms\n\n",
		c.bold.Sprint(session.Deck.Name), session.Progress.DueCount, session.Progress.Total)

	reviewed := session.Progress.Reviewed
	for {
		for _, card := range session.DueCards {
			if ctx.Err() != nil {
				c.printSummary(reviewed)
				return nil
			}

			quit, err := c.reviewCard(ctx, userID, card)
			if err != nil {
				if errors.Is(err, io.EOF) {
					c.printSummary(reviewed)
					return nil
				}
				return err
			}
			if quit {
				c.printSummary(reviewed)
				return nil
			}
			reviewed++
		}

		more, err := c.askLoadMore(ctx, userID, deckID)
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.printSummary(reviewed)
				return nil
			}
			return err
		}
		if more == nil {
			c.printSummary(reviewed)
			return nil
		}
		session = more
	}
}

// reviewCard shows one card and reads a rating. Returns quit=true when the
// user asked to stop.
func (c *StudyCLI) reviewCard(ctx context.Context, userID int64, card review.DueCard) (bool, error) {
	fmt.Fprintf(c.out, "%s\n", c.bold.Sprint(card.Term))
	fmt.Fprintf(c.out, "(press Enter to reveal, q to quit) ")

	line, err := c.stdin.ReadString('\n')
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(line) == "q" {
		return true, nil
	}

	fmt.Fprintf(c.out, "%s\n\n", c.italic.Sprint(card.Definition))

	previews, err := c.service.PreviewNextIntervals(card.Interval, card.EaseFactor)
	if err != nil {
		return false, fmt.Errorf("preview intervals: %w", err)
	}
	for rating := review.RatingAgain; rating <= review.RatingEasy; rating++ {
		fmt.Fprintf(c.out, "  %d) %s (%s)", int(rating), FormatInterval(previews[rating].Days), rating)
	}
	fmt.Fprintln(c.out)

	rating, quit, err := c.readRating()
	if err != nil || quit {
		return quit, err
	}

	result, err := c.service.Rate(ctx, userID, card.TermID, rating, card.Interval, card.EaseFactor)
	if err != nil {
		return false, fmt.Errorf("rate term %d: %w", card.TermID, err)
	}

	next := fmt.Sprintf("next review in %s (%s)", FormatInterval(result.Interval), result.NextReview.Format("2006-01-02 15:04"))
	if rating >= review.RatingGood {
		color.New(color.FgGreen).Fprintf(c.out, "✅ %s\n\n", next)
	} else {
		color.New(color.FgRed).Fprintf(c.out, "❌ %s\n\n", next)
	}
	return false, nil
}

func (c *StudyCLI) readRating() (review.Rating, bool, error) {
	for {
		fmt.Fprintf(c.out, "Rating (1-4, q to quit): ")
		line, err := c.stdin.ReadString('\n')
		if err != nil {
			return 0, false, err
		}

		input := strings.TrimSpace(line)
		if input == "q" {
			return 0, true, nil
		}

		var value int
		if _, err := fmt.Sscanf(input, "%d", &value); err == nil {
			rating := review.Rating(value)
			if rating.Validate() == nil {
				return rating, false, nil
			}
		}
		color.New(color.FgYellow).Fprintln(c.out, "Please enter a number between 1 and 4.")
	}
}

// askLoadMore re-resolves the due queue when the current one is done.
// Returns nil when there is nothing more or the user declines.
func (c *StudyCLI) askLoadMore(ctx context.Context, userID, deckID int64) (*review.Session, error) {
	session, err := c.service.LoadMore(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("load more cards: %w", err)
	}
	if session.Progress.DueCount == 0 {
		color.New(color.FgGreen).Fprintln(c.out, "No more cards due today.")
		fmt.Fprintf(c.out, "Progress: %d of %d terms reviewed\n", session.Progress.Reviewed, session.Progress.Total)
		return nil, nil
	}

	fmt.Fprintf(c.out, "%d more cards are due (%d of %d terms reviewed). Continue? (y/N) ",
		session.Progress.DueCount, session.Progress.Reviewed, session.Progress.Total)
	line, err := c.stdin.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(strings.ToLower(line)) != "y" {
		return nil, nil
	}
	return session, nil
}

func (c *StudyCLI) printSummary(reviewed int) {
	fmt.Fprintf(c.out, "\nSession finished: %d cards reviewed.\n", reviewed)
}
