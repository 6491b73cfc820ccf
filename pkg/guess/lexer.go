package guess

import (
	"fmt"
	"strings"
	"unicode"

	"cribbage-trainer/pkg/cribbage"
)

// TokenKind is a kind of token in the symbolic guess grammar
type TokenKind int

// TokenKind constants
const (
	TokenFifteen TokenKind = iota + 1
	TokenNobs
	TokenHandFlush
	TokenFiveCardFlush
	TokenRunOfThree
	TokenRunOfFour
	TokenRunOfFive
	TokenPair
	TokenPairRoyal
	TokenDoublePairRoyal
)

// Token is a single claim in a symbolic guess
type Token struct {
	Kind TokenKind
	Text string
}

// Category returns the scoring category the token claims
// Every kind the lexer produces has a category; anything else is a bug.
func (t Token) Category() cribbage.Category {
	switch t.Kind {
	case TokenFifteen:
		return cribbage.Fifteen
	case TokenNobs:
		return cribbage.HisNobs
	case TokenHandFlush:
		return cribbage.HandFlush
	case TokenFiveCardFlush:
		return cribbage.FiveCardFlush
	case TokenRunOfThree:
		return cribbage.RunOfThree
	case TokenRunOfFour:
		return cribbage.RunOfFour
	case TokenRunOfFive:
		return cribbage.RunOfFive
	case TokenPair:
		return cribbage.Pair
	case TokenPairRoyal:
		return cribbage.PairRoyal
	case TokenDoublePairRoyal:
		return cribbage.DoublePairRoyal
	default:
		panic(fmt.Sprintf("unexpected token %q (kind %d)", t.Text, t.Kind))
	}
}

// Lex splits a symbolic guess into tokens. Whitespace is ignored.
//
//	f          fifteen
//	n          his nobs
//	s          hand flush
//	S          five card flush
//	r3 r4 r5   run of three, four, five
//	p p2       pair
//	p3         pair royal
//	p4         double pair royal
//
// Input that does not fully decompose returns a LeftoverError.
func Lex(input string) ([]Token, error) {
	src := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, input)

	var tokens []Token
	for pos := 0; pos < len(src); {
		kind, width := lexOne(src[pos:])
		if width == 0 {
			return nil, LeftoverError{Offset: pos, Rest: src[pos:]}
		}

		tokens = append(tokens, Token{Kind: kind, Text: src[pos : pos+width]})
		pos += width
	}

	return tokens, nil
}

// lexOne returns the token at the start of s, or a width of 0
func lexOne(s string) (TokenKind, int) {
	switch s[0] {
	case 'f':
		return TokenFifteen, 1
	case 'n':
		return TokenNobs, 1
	case 's':
		return TokenHandFlush, 1
	case 'S':
		return TokenFiveCardFlush, 1
	case 'r':
		if len(s) < 2 {
			return 0, 0
		}

		switch s[1] {
		case '3':
			return TokenRunOfThree, 2
		case '4':
			return TokenRunOfFour, 2
		case '5':
			return TokenRunOfFive, 2
		}
	case 'p':
		if len(s) < 2 {
			return TokenPair, 1
		}

		switch s[1] {
		case '2':
			return TokenPair, 2
		case '3':
			return TokenPairRoyal, 2
		case '4':
			return TokenDoublePairRoyal, 2
		}

		return TokenPair, 1
	}

	return 0, 0
}
