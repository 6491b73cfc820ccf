package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed from its notation
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits returns the suits in their canonical order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Order returns the fixed 1-4 rank of the suit (clubs < diamonds < hearts < spades)
func (s Suit) Order() int {
	switch s {
	case Clubs:
		return 1
	case Diamonds:
		return 2
	case Hearts:
		return 3
	case Spades:
		return 4
	default:
		panic("unknown suit")
	}
}

// Symbol returns the single-character marker for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		panic("unknown suit")
	}
}

// Letter returns the upper case letter used for the suit in card notation
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		panic("unknown suit")
	}
}

// IsRed returns true for diamonds and hearts
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank is the rank of a card. Aces are always low.
type Rank int

// face cards
const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Ranks returns every rank from ace through king
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}

	return ranks
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an individual playing card
// Cards are values; two cards are equal when their rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// SumValue is the value of the card when counting to fifteen (face cards are 10)
func (c Card) SumValue() int {
	if c.Rank >= 10 {
		return 10
	}

	return int(c.Rank)
}

// RunValue is the ordinal position of the card's rank, ace = 1 through king = 13
func (c Card) RunValue() int {
	return int(c.Rank)
}

// TotalOrder gives every card in the deck a distinct sort position
func (c Card) TotalOrder() int {
	return c.RunValue()*10 + c.Suit.Order()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Notation returns the card in the <rank><suit> notation accepted by ParseCard (e.g., 10D)
func (c Card) Notation() string {
	return c.Rank.String() + c.Suit.Letter()
}

var cardRx = regexp.MustCompile(`(?i)^(A|[2-9]|10|T|J|Q|K)([cdhs])\z`)

// ParseCard parses a card from the <rank><suit> notation.
// Rank is one of A,2-10,J,Q,K (T is accepted for 10) and suit is one of C,D,H,S.
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch strings.ToUpper(match[1]) {
	case "A":
		rank = Ace
	case "T":
		rank = 10
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}

		rank = Rank(n)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses whitespace separated card notation
func ParseCards(s string) (Cards, error) {
	fields := strings.Fields(s)
	cards := make(Cards, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString returns a Card from the string, panicking if it cannot be parsed.
// It is intended for fixtures where the notation is known to be valid.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString is the panicking form of ParseCards
func CardsFromString(s string) Cards {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}
