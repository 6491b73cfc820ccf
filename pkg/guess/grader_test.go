package guess

import (
	"testing"

	"cribbage-trainer/pkg/cribbage"
	"cribbage-trainer/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func board(t *testing.T, s string) *cribbage.ScoreBoard {
	t.Helper()

	h, err := cribbage.ParseHand(s)
	if err != nil {
		t.Fatalf("could not parse hand %q: %v", s, err)
	}

	return h.ScoreBoard()
}

func TestGrade_Numeric(t *testing.T) {
	a := assert.New(t)
	b := board(t, "5D 3H 2D 4C 8S") // 8

	r, err := Grade(b, "8")
	a.NoError(err)
	a.Equal(Numeric, r.Kind)
	a.True(r.Correct())
	a.Equal("Correct!", r.Brief())

	r, err = Grade(b, " 4 2  2 ")
	a.NoError(err)
	a.True(r.Correct())

	r, err = Grade(b, "11")
	a.NoError(err)
	a.Equal(WrongTotal, r.Outcome)
	a.Equal(3, r.Diff())
	a.Equal(3, r.Off())
	a.Equal("You were off by 3", r.Brief())
	a.Empty(r.Discrepancies)

	r, err = Grade(b, "6")
	a.NoError(err)
	a.Equal(-2, r.Diff())
	a.Equal("You were off by 2", r.Brief())

	_, err = Grade(b, "99999999999999999999999")
	a.ErrorIs(err, ErrUnparseable)
}

func TestGrade_NumericSumsAreEquivalent(t *testing.T) {
	a := assert.New(t)
	b := board(t, "2H JH QH 2D 5D") // 7

	r1, err := Grade(b, "2 2 1")
	a.NoError(err)
	r2, err := Grade(b, "5")
	a.NoError(err)

	a.Equal(r1, r2)
	a.Equal(2, r1.Off())
}

func TestGrade_Symbolic(t *testing.T) {
	a := assert.New(t)
	b := board(t, "5D 3H 2D 4C 5S") // r4 r4 f p = 12

	r, err := Grade(b, "r4r4fp")
	a.NoError(err)
	a.Equal(Symbolic, r.Kind)
	a.True(r.Correct())
	a.Equal(12, r.Guess)
	a.Empty(r.Details())

	r, err = Grade(b, "p r4 f r4")
	a.NoError(err)
	a.True(r.Correct())

	r, err = Grade(b, "r4 f f p")
	a.NoError(err)
	a.Equal(WrongTotal, r.Outcome)
	a.Equal(10, r.Guess)
	a.Equal("You were off by 2", r.Brief())
	a.Equal([]Discrepancy{
		{Category: cribbage.Fifteen, Residual: 1},
		{Category: cribbage.RunOfFour, Residual: -1},
	}, r.Discrepancies)
	a.Equal("Fifteen: You overcounted 1\nRun of Four: You missed 1\n", r.Details())
}

func TestGrade_RightTotalWrongHands(t *testing.T) {
	a := assert.New(t)
	b := board(t, "5D 3H 2D 4C 8S") // r4 f f = 8

	r, err := Grade(b, "ffff")
	a.NoError(err)
	a.Equal(8, r.Guess)
	a.False(r.Correct())
	a.Equal(RightTotalWrongHands, r.Outcome)
	a.Equal("You got the right score, but the wrong hands.", r.Brief())
	a.Equal([]Discrepancy{
		{Category: cribbage.Fifteen, Residual: 2},
		{Category: cribbage.RunOfFour, Residual: -1},
	}, r.Discrepancies)
}

func TestGrade_SortedByCategoryName(t *testing.T) {
	b := board(t, "2C 4D 6H 8S KC") // nothing

	r, err := Grade(b, "n p4 f S")
	assert.NoError(t, err)

	names := make([]string, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		names[i] = d.Category.String()
	}
	assert.Equal(t, []string{"Double Pair Royal", "Fifteen", "Five Card Flush", "His Nobs"}, names)
}

func TestGrade_Empty(t *testing.T) {
	a := assert.New(t)

	r, err := Grade(board(t, "2C 4D 6H 8S KC"), "")
	a.NoError(err)
	a.Equal(Symbolic, r.Kind)
	a.True(r.Correct())

	r, err = Grade(board(t, "5D 3H 2D 4C 8S"), "  ")
	a.NoError(err)
	a.Equal(WrongTotal, r.Outcome)
	a.Equal(8, r.Off())
}

func TestGrade_Unparseable(t *testing.T) {
	b := board(t, "5D 3H 2D 4C 8S")

	for _, input := range []string{"eight", "ff x", "8 f", "r2", "-8", "9223372036854775807 9223372036854775807 10"} {
		r, err := Grade(b, input)
		assert.Nil(t, r, input)
		assert.ErrorIs(t, err, ErrUnparseable, input)
	}
}

func TestNotation_RoundTrip(t *testing.T) {
	a := assert.New(t)

	a.Equal("ff p r4r4", Notation(board(t, "5D 3H 2D 4C 5S")))
	a.Equal("ffffffff p4 n", Notation(board(t, "5D JD 5C 5S 5H")))
	a.Equal("", Notation(board(t, "2C 4D 6H 8S KC")))

	d := deck.New()
	d.SetSeed(3)
	for i := 0; i < 1000; i++ {
		d.Shuffle()
		h, err := cribbage.HandFromCards(d.Cards[:5])
		a.NoError(err)

		r, err := Grade(h.ScoreBoard(), Notation(h.ScoreBoard()))
		a.NoError(err)
		a.True(r.Correct(), h.String())
		a.Equal(h.Score(), r.Guess)
	}
}

func TestDiscrepancy_String(t *testing.T) {
	assert.Equal(t, "Pair: You overcounted 2", Discrepancy{Category: cribbage.Pair, Residual: 2}.String())
	assert.Equal(t, "His Nobs: You missed 1", Discrepancy{Category: cribbage.HisNobs, Residual: -1}.String())
}
