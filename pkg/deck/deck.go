package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"fmt"

	"cribbage-trainer/internal/rng"
)

// Deck represents a playing deck
type Deck struct {
	Cards Cards `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed will make every following shuffle reproducible
// A seed of 0 switches back to crypto-random shuffles.
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.FromSeed(seed)
}

// SetGenerator replaces the generator used by Shuffle
func (d *Deck) SetGenerator(gen rng.Generator) {
	d.rng = gen
}

func (d *Deck) buildDeck() {
	cards := make(Cards, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the cards currently in the deck
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Pick removes the top n cards from the deck and returns them.
// Callers must check CanDraw first: picking more cards than remain panics.
func (d *Deck) Pick(n int) Cards {
	if n < 0 || n > len(d.Cards) {
		panic(fmt.Sprintf("cannot pick %d cards from a deck of %d", n, len(d.Cards)))
	}

	picked := d.Cards[:n].Clone()
	d.Cards = d.Cards[n:].Clone()

	return picked
}

// Replace puts the cards back on the bottom of the deck
// Nothing checks that the cards came from this deck.
func (d *Deck) Replace(cards Cards) {
	d.Cards = append(d.Cards, cards...)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
