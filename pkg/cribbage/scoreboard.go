package cribbage

import (
	"encoding/json"

	"cribbage-trainer/pkg/deck"
)

// Entry is a single scoring hit
type Entry struct {
	Category Category `json:"category"`
	// Rank is the matched rank for pairs, pair royals and double pair royals
	Rank   deck.Rank  `json:"rank,omitempty"`
	Cards  deck.Cards `json:"cards"`
	Points int        `json:"points"`
}

// ScoreBoard is the ordered ledger of hits for one hand
// A ScoreBoard is only ever filled in by the Hand that owns it, and is read-only afterwards.
type ScoreBoard struct {
	entries []Entry
}

// Entries returns a copy of the hits in the order they were found
func (s *ScoreBoard) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	for i, entry := range s.entries {
		entry.Cards = entry.Cards.Clone()
		entries[i] = entry
	}

	return entries
}

// Len returns the number of hits
func (s *ScoreBoard) Len() int {
	return len(s.entries)
}

// Total returns the sum of all hits
func (s *ScoreBoard) Total() int {
	total := 0
	for _, entry := range s.entries {
		total += entry.Points
	}

	return total
}

// Counts returns the number of hits per category
// Categories without hits are absent.
func (s *ScoreBoard) Counts() map[Category]int {
	counts := make(map[Category]int)
	for _, entry := range s.entries {
		counts[entry.Category]++
	}

	return counts
}

// MarshalJSON encodes the entries and the total
func (s *ScoreBoard) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Entries []Entry `json:"entries"`
		Total   int     `json:"total"`
	}{
		Entries: s.Entries(),
		Total:   s.Total(),
	})
}
