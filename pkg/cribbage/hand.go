package cribbage

import (
	"errors"
	"fmt"
	"strings"

	"cribbage-trainer/pkg/deck"
)

// handSize is the starter plus the four cards in the hand
const handSize = 5

// ErrCardCount is returned when a hand string does not contain exactly five cards
var ErrCardCount = errors.New("a hand needs exactly five cards")

type state int

const (
	stateUnscored state = iota
	stateScoring
	stateScored
)

// Hand is a starter card plus the four cards held by a player
// The score board is computed the first time it is requested and cached afterwards.
// A Hand is not safe for concurrent use.
type Hand struct {
	starter deck.Card
	cards   [4]deck.Card

	state state
	board *ScoreBoard
}

// NewHand returns a new, unscored hand
// The cards are not checked for duplicates.
func NewHand(starter deck.Card, cards [4]deck.Card) *Hand {
	return &Hand{
		starter: starter,
		cards:   cards,
	}
}

// ParseHand parses whitespace separated card notation.
// The first card is the starter, e.g., "5D 3H 2D 4C 8S"
func ParseHand(s string) (*Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, err
	}

	return HandFromCards(cards)
}

// HandFromCards builds a hand from five cards, starter first
func HandFromCards(cards deck.Cards) (*Hand, error) {
	if len(cards) != handSize {
		return nil, fmt.Errorf("%w: got %d", ErrCardCount, len(cards))
	}

	var rest [4]deck.Card
	copy(rest[:], cards[1:])

	return NewHand(cards[0], rest), nil
}

// Starter returns the starter card
func (h *Hand) Starter() deck.Card {
	return h.starter
}

// Cards returns the four non-starter cards
func (h *Hand) Cards() deck.Cards {
	cards := make(deck.Cards, len(h.cards))
	copy(cards, h.cards[:])

	return cards
}

// All returns all five cards, starter first
func (h *Hand) All() deck.Cards {
	return append(deck.Cards{h.starter}, h.cards[:]...)
}

// ScoreBoard returns the scored hits for the hand
func (h *Hand) ScoreBoard() *ScoreBoard {
	switch h.state {
	case stateScored:
		return h.board
	case stateScoring:
		panic("hand is already being scored")
	}

	h.state = stateScoring
	pass := newScorePass(h)

	pass.considerNobs()
	pass.considerHandFlush()

	for _, set := range Subsets(h.All()) {
		pass.considerMultiples(set)
		pass.considerRuns(set)
		pass.considerFifteens(set)
		pass.considerFiveCardFlush(set)
	}

	h.board = pass.board
	h.state = stateScored

	return h.board
}

// Score returns the total points in the hand
func (h *Hand) Score() int {
	return h.ScoreBoard().Total()
}

// String returns the starter followed by the hand, e.g., "5D | 3H 2D 4C 8S"
func (h *Hand) String() string {
	var b strings.Builder
	b.WriteString(h.starter.Notation())
	b.WriteString(" | ")
	b.WriteString(h.Cards().String())

	return b.String()
}
