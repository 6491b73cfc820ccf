package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"cribbage-trainer/pkg/guess"
	"cribbage-trainer/pkg/render"
	"cribbage-trainer/pkg/trainer"
)

const helpText = `Guess the score of the hand. The first card is the starter.

  A number, or several that are added up:   12   or   2 2 4 4
  Or the combinations you see:
    f   fifteen              n   his nobs
    p   pair (or p2)         p3  pair royal       p4  double pair royal
    r3  run of three         r4  run of four      r5  run of five
    s   hand flush           S   five card flush
  e.g. "ff p r4r4" is two fifteens, a pair and two runs of four.
`

// play runs the read-a-line guessing loop until r is exhausted
func play(r io.Reader, w io.Writer, game *trainer.Game, painter render.Painter, showNotation bool) error {
	scanner := bufio.NewScanner(r)

	hand := game.Deal()
	fmt.Fprint(w, painter.HandString(hand))
	fmt.Fprint(w, "> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "?" || line == "help" {
			fmt.Fprint(w, helpText)
			fmt.Fprint(w, "> ")
			continue
		}

		result, err := game.HandleGuess(line)
		if errors.Is(err, guess.ErrUnparseable) {
			fmt.Fprintf(w, "I didn't understand that guess (? for help).\n> ")
			continue
		} else if err != nil {
			return err
		}

		if result.Correct() {
			fmt.Fprintf(w, "GREAT JOB! Streak: %d\n", game.Streak())
		} else {
			fmt.Fprintln(w, result.Brief())
			fmt.Fprint(w, result.Details())
		}

		board := hand.ScoreBoard()
		fmt.Fprint(w, painter.ScoreString(board))
		if showNotation && board.Len() > 0 {
			fmt.Fprintf(w, "  %s\n", guess.Notation(board))
		}
		fmt.Fprintln(w)

		hand = game.Deal()
		fmt.Fprint(w, painter.HandString(hand))
		fmt.Fprint(w, "> ")
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n\nOkay, have fun, bye! Best streak: %d\n", game.BestStreak())
	return nil
}
