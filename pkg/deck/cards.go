package deck

import (
	"sort"
	"strings"
)

// Cards represents a collection of cards
// The sort order is ascending TotalOrder.
type Cards []Card

func (c Cards) Len() int {
	return len(c)
}

func (c Cards) Less(i, j int) bool {
	return c[i].TotalOrder() < c[j].TotalOrder()
}

func (c Cards) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Sorted returns a sorted copy of the cards
func (c Cards) Sorted() Cards {
	sorted := c.Clone()
	sort.Sort(sorted)

	return sorted
}

// HasCard returns true if the collection contains the specified card
func (c Cards) HasCard(card Card) bool {
	for _, cc := range c {
		if cc == card {
			return true
		}
	}

	return false
}

// Contains returns true if every card in other is also in c
func (c Cards) Contains(other Cards) bool {
	for _, card := range other {
		if !c.HasCard(card) {
			return false
		}
	}

	return true
}

// SumValue returns the total fifteens value of the cards
func (c Cards) SumValue() int {
	sum := 0
	for _, card := range c {
		sum += card.SumValue()
	}

	return sum
}

// SameSuit returns true if there is at least one card and all cards share a suit
func (c Cards) SameSuit() bool {
	if len(c) == 0 {
		return false
	}

	for _, card := range c[1:] {
		if card.Suit != c[0].Suit {
			return false
		}
	}

	return true
}

// SameRank returns true if there is at least one card and all cards share a rank
func (c Cards) SameRank() bool {
	if len(c) == 0 {
		return false
	}

	for _, card := range c[1:] {
		if card.Rank != c[0].Rank {
			return false
		}
	}

	return true
}

// String returns the cards in notation form, separated by spaces (e.g., 5D 3H 2D)
func (c Cards) String() string {
	s := make([]string, len(c))
	for i, card := range c {
		s[i] = card.Notation()
	}

	return strings.Join(s, " ")
}

// Clone returns a clone of the cards
func (c Cards) Clone() Cards {
	c2 := make(Cards, len(c))
	copy(c2, c)

	return c2
}
