package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ResetCLI clears a user's review progress for one deck after confirmation.
type ResetCLI struct {
	service StudyService
	stdin   *bufio.Reader
	out     io.Writer
}

// NewResetCLI creates a new ResetCLI.
func NewResetCLI(service StudyService, stdin io.Reader, out io.Writer) *ResetCLI {
	return &ResetCLI{
		service: service,
		stdin:   bufio.NewReader(stdin),
		out:     out,
	}
}

// Run asks for confirmation, resets the deck's progress, and prints the
// resulting fresh queue. With force set the confirmation is skipped.
func (c *ResetCLI) Run(ctx context.Context, userID, deckID int64, force bool) error {
	if !force {
		fmt.Fprintf(c.out, "This deletes all review progress and history for deck %d. Continue? (y/N) ", deckID)
		line, err := c.stdin.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if strings.TrimSpace(strings.ToLower(line)) != "y" {
			fmt.Fprintln(c.out, "Aborted.")
			return nil
		}
	}

	session, err := c.service.ResetProgress(ctx, userID, deckID)
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}

	color.New(color.FgGreen).Fprintf(c.out, "Progress for %s reset.\n", session.Deck.Name)
	fmt.Fprintf(c.out, "%d of %d terms are due.\n", session.Progress.DueCount, session.Progress.Total)
	return nil
}
