package guess

import (
	"fmt"
	"strings"

	"cribbage-trainer/pkg/cribbage"
)

// Notation returns the symbolic guess that exactly describes the score board,
// grouped by category, e.g., "ff p r4r4"
func Notation(board *cribbage.ScoreBoard) string {
	counts := board.Counts()

	groups := make([]string, 0, len(counts))
	for _, category := range cribbage.Categories() {
		if n := counts[category]; n > 0 {
			groups = append(groups, strings.Repeat(tokenText(category), n))
		}
	}

	return strings.Join(groups, " ")
}

func tokenText(category cribbage.Category) string {
	switch category {
	case cribbage.Fifteen:
		return "f"
	case cribbage.HisNobs:
		return "n"
	case cribbage.HandFlush:
		return "s"
	case cribbage.FiveCardFlush:
		return "S"
	case cribbage.RunOfThree:
		return "r3"
	case cribbage.RunOfFour:
		return "r4"
	case cribbage.RunOfFive:
		return "r5"
	case cribbage.Pair:
		return "p"
	case cribbage.PairRoyal:
		return "p3"
	case cribbage.DoublePairRoyal:
		return "p4"
	default:
		panic(fmt.Sprintf("no token for category %v", category))
	}
}
