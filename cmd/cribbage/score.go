package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"cribbage-trainer/pkg/cribbage"
	"cribbage-trainer/pkg/render"

	"github.com/sirupsen/logrus"
)

// errBadHands is returned when at least one hand could not be parsed
var errBadHands = errors.New("some hands could not be parsed")

type scoredHand struct {
	Hand       string               `json:"hand"`
	ScoreBoard *cribbage.ScoreBoard `json:"scoreBoard"`
}

// score prints the score board for every hand in r, one hand per line
// Blank lines and lines starting with # are skipped.
func score(r io.Reader, w io.Writer, painter render.Painter, asJSON bool) error {
	enc := json.NewEncoder(w)
	failed := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		hand, err := cribbage.ParseHand(line)
		if err != nil {
			logrus.WithError(err).WithField("hand", line).Error("could not parse hand")
			failed = true
			continue
		}

		if asJSON {
			if err := enc.Encode(scoredHand{Hand: hand.All().String(), ScoreBoard: hand.ScoreBoard()}); err != nil {
				return err
			}

			continue
		}

		fmt.Fprintln(w, painter.HandString(hand))
		fmt.Fprintln(w, painter.ScoreString(hand.ScoreBoard()))
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if failed {
		return errBadHands
	}

	return nil
}
