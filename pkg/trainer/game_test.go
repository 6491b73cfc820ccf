package trainer

import (
	"testing"

	"cribbage-trainer/internal/rng"
	"cribbage-trainer/pkg/guess"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newTestGame(seed int64) (*Game, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return NewGame(logger, rng.FromSeed(seed)), hook
}

func TestGame_Deal(t *testing.T) {
	a := assert.New(t)
	g, hook := newTestGame(1)

	a.Nil(g.Hand())
	a.Equal(0, g.Round())

	h := g.Deal()
	a.Same(h, g.Hand())
	a.Equal(1, g.Round())
	a.Len(h.All(), 5)
	a.Equal(52, g.deck.CardsLeft())

	entry := hook.LastEntry()
	a.Equal("dealt hand", entry.Message)
	a.Equal(h.String(), entry.Data["hand"])
	a.NotEmpty(entry.Data["round"])

	firstRound := g.roundID
	g.Deal()
	a.Equal(2, g.Round())
	a.NotEqual(firstRound, g.roundID)
	a.Equal(52, g.deck.CardsLeft())
}

func TestGame_DealShortDeck(t *testing.T) {
	g, _ := newTestGame(1)
	g.deck.Pick(48)

	assert.PanicsWithValue(t, "need 5 cards to deal, deck has 4", func() { g.Deal() })
	assert.Equal(t, 0, g.Round())
}

func TestGame_DealIsReproducible(t *testing.T) {
	g1, _ := newTestGame(99)
	g2, _ := newTestGame(99)

	for i := 0; i < 10; i++ {
		assert.Equal(t, g1.Deal().String(), g2.Deal().String())
	}
}

func TestGame_HandleGuess(t *testing.T) {
	a := assert.New(t)
	g, hook := newTestGame(5)

	_, err := g.HandleGuess("2")
	a.ErrorIs(err, ErrNoHand)

	for i := 1; i <= 3; i++ {
		h := g.Deal()
		result, err := g.HandleGuess(guess.Notation(h.ScoreBoard()))
		a.NoError(err)
		a.True(result.Correct())
		a.Equal(i, g.Streak())
	}

	entry := hook.LastEntry()
	a.Equal("graded guess", entry.Message)
	a.Equal("correct", entry.Data["outcome"])
	a.Equal(3, entry.Data["streak"])

	// unparseable guesses don't touch the streak
	g.Deal()
	_, err = g.HandleGuess("what?")
	a.ErrorIs(err, guess.ErrUnparseable)
	a.Equal(3, g.Streak())

	score := g.Hand().Score()
	result, err := g.HandleGuess("100")
	a.NoError(err)
	a.False(result.Correct())
	a.Equal(100-score, result.Off())
	a.Equal(0, g.Streak())
	a.Equal(3, g.BestStreak())
	a.Equal("wrongTotal", hook.LastEntry().Data["outcome"])
}
