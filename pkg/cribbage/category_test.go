package cribbage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Points(t *testing.T) {
	a := assert.New(t)

	a.Equal(2, Fifteen.Points())
	a.Equal(2, Pair.Points())
	a.Equal(6, PairRoyal.Points())
	a.Equal(12, DoublePairRoyal.Points())
	a.Equal(3, RunOfThree.Points())
	a.Equal(4, RunOfFour.Points())
	a.Equal(5, RunOfFive.Points())
	a.Equal(4, HandFlush.Points())
	a.Equal(5, FiveCardFlush.Points())
	a.Equal(1, HisNobs.Points())

	a.Panics(func() { Category(0).Points() })
}

func TestCategory_String(t *testing.T) {
	a := assert.New(t)

	names := make(map[string]bool)
	for _, c := range Categories() {
		names[c.String()] = true
	}
	a.Len(names, 10)

	a.Equal("Double Pair Royal", DoublePairRoyal.String())
	a.Equal("Five Card Flush", FiveCardFlush.String())
	a.Equal("Category(99)", Category(99).String())

	text, err := HisNobs.MarshalText()
	a.NoError(err)
	a.Equal("His Nobs", string(text))
}

func TestMultipleAndRunCategories(t *testing.T) {
	a := assert.New(t)

	for n := 2; n <= 4; n++ {
		a.Equal(n*(n-1), multipleCategory(n).Points())
	}

	for n := 3; n <= 5; n++ {
		a.Equal(n, runCategory(n).Points())
	}

	a.Panics(func() { multipleCategory(5) })
	a.Panics(func() { runCategory(2) })
}
