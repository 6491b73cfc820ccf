package cribbage

import "fmt"

// Category is a scoring category
type Category int

// Category constants
const (
	Fifteen Category = iota + 1
	Pair
	PairRoyal
	DoublePairRoyal
	RunOfThree
	RunOfFour
	RunOfFive
	HandFlush
	FiveCardFlush
	HisNobs
)

// Categories returns every scoring category
func Categories() []Category {
	return []Category{
		Fifteen,
		Pair,
		PairRoyal,
		DoublePairRoyal,
		RunOfThree,
		RunOfFour,
		RunOfFive,
		HandFlush,
		FiveCardFlush,
		HisNobs,
	}
}

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case Fifteen:
		return "Fifteen"
	case Pair:
		return "Pair"
	case PairRoyal:
		return "Pair Royal"
	case DoublePairRoyal:
		return "Double Pair Royal"
	case RunOfThree:
		return "Run of Three"
	case RunOfFour:
		return "Run of Four"
	case RunOfFive:
		return "Run of Five"
	case HandFlush:
		return "Hand Flush"
	case FiveCardFlush:
		return "Five Card Flush"
	case HisNobs:
		return "His Nobs"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Points returns what a single hit in the category is worth
func (c Category) Points() int {
	switch c {
	case Fifteen, Pair:
		return 2
	case PairRoyal:
		return 6
	case DoublePairRoyal:
		return 12
	case RunOfThree:
		return 3
	case RunOfFour, HandFlush:
		return 4
	case RunOfFive, FiveCardFlush:
		return 5
	case HisNobs:
		return 1
	default:
		panic(fmt.Sprintf("unknown category: %d", int(c)))
	}
}

// MarshalText encodes the category as its display name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// multipleCategory returns the category for n cards of the same rank
func multipleCategory(n int) Category {
	switch n {
	case 2:
		return Pair
	case 3:
		return PairRoyal
	case 4:
		return DoublePairRoyal
	default:
		panic(fmt.Sprintf("no multiple of size %d", n))
	}
}

// runCategory returns the category for a run of n cards
func runCategory(n int) Category {
	switch n {
	case 3:
		return RunOfThree
	case 4:
		return RunOfFour
	case 5:
		return RunOfFive
	default:
		panic(fmt.Sprintf("no run of size %d", n))
	}
}
