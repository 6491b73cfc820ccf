package cribbage

import (
	"sort"

	"cribbage-trainer/pkg/deck"
)

// Subsets returns every non-empty combination of the cards.
//
// Each subset is sorted by ascending TotalOrder, and the subsets are ordered by
// descending size. Subsets of the same size follow the bitmask order of the input,
// with the first card as the lowest bit. The scoring rules rely on the largest
// subsets being visited first.
func Subsets(cards deck.Cards) []deck.Cards {
	n := len(cards)
	subsets := make([]deck.Cards, 0, 1<<n-1)
	for mask := 1; mask < 1<<n; mask++ {
		subset := make(deck.Cards, 0, n)
		for i, card := range cards {
			if mask&(1<<i) != 0 {
				subset = append(subset, card)
			}
		}

		sort.Sort(subset)
		subsets = append(subsets, subset)
	}

	sort.SliceStable(subsets, func(i, j int) bool {
		return len(subsets[i]) > len(subsets[j])
	})

	return subsets
}
