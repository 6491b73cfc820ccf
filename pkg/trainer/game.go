package trainer

import (
	"errors"
	"fmt"

	"cribbage-trainer/internal/rng"
	"cribbage-trainer/pkg/cribbage"
	"cribbage-trainer/pkg/deck"
	"cribbage-trainer/pkg/guess"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNoHand is returned when a guess is made before a hand was dealt
var ErrNoHand = errors.New("no hand has been dealt")

const cardsPerHand = 5

// Game is a guess-the-score drill
// Each round deals a starter and four cards from a single deck. The dealt cards go
// back into the deck, which is reshuffled, so every round draws from all 52 cards.
type Game struct {
	deck    *deck.Deck
	hand    *cribbage.Hand
	roundID string
	round   int
	streak  int
	best    int

	logger logrus.FieldLogger
}

// NewGame returns a new game with a freshly shuffled deck
// The first hand is not dealt until Deal() is called.
func NewGame(logger logrus.FieldLogger, gen rng.Generator) *Game {
	d := deck.New()
	d.SetGenerator(gen)
	d.Shuffle()

	return &Game{
		deck:   d,
		logger: logger,
	}
}

// Deal starts a new round and returns its hand
func (g *Game) Deal() *cribbage.Hand {
	if !g.deck.CanDraw(cardsPerHand) {
		panic(fmt.Sprintf("need %d cards to deal, deck has %d", cardsPerHand, g.deck.CardsLeft()))
	}

	cards := g.deck.Pick(cardsPerHand)
	hand, err := cribbage.HandFromCards(cards)
	if err != nil {
		// Pick always returns cardsPerHand cards
		panic(err)
	}

	g.deck.Replace(cards)
	g.deck.Shuffle()

	g.hand = hand
	g.round++
	g.roundID = uuid.New().String()

	g.logger.WithFields(logrus.Fields{
		"round":  g.roundID,
		"number": g.round,
		"hand":   hand.String(),
	}).Debug("dealt hand")

	return hand
}

// Hand returns the hand for the current round, or nil before the first deal
func (g *Game) Hand() *cribbage.Hand {
	return g.hand
}

// Round returns the number of hands dealt
func (g *Game) Round() int {
	return g.round
}

// Streak returns the number of correct guesses in a row
func (g *Game) Streak() int {
	return g.streak
}

// BestStreak returns the longest streak seen in this game
func (g *Game) BestStreak() int {
	return g.best
}

// HandleGuess grades a guess against the current hand.
// A guess that can't be understood returns an error wrapping guess.ErrUnparseable
// and leaves the streak alone.
func (g *Game) HandleGuess(input string) (*guess.Result, error) {
	if g.hand == nil {
		return nil, ErrNoHand
	}

	logger := g.logger.WithFields(logrus.Fields{
		"round": g.roundID,
		"hand":  g.hand.String(),
		"guess": input,
	})

	result, err := guess.Grade(g.hand.ScoreBoard(), input)
	if err != nil {
		logger.WithError(err).Debug("could not grade guess")
		return nil, err
	}

	if result.Correct() {
		g.streak++
		if g.streak > g.best {
			g.best = g.streak
		}
	} else {
		g.streak = 0
	}

	logger.WithFields(logrus.Fields{
		"outcome": result.Outcome.String(),
		"streak":  g.streak,
	}).Info("graded guess")

	return result, nil
}
