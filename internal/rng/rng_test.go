package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSeed(t *testing.T) {
	a := assert.New(t)

	a.IsType(Crypto{}, FromSeed(0))

	g1 := FromSeed(42)
	g2 := FromSeed(42)
	for i := 0; i < 20; i++ {
		a.Equal(g1.Intn(52), g2.Intn(52))
	}
}
