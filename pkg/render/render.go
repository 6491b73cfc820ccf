// Package render draws hands and score boards for a terminal
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cribbage-trainer/pkg/cribbage"
	"cribbage-trainer/pkg/deck"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1;97m"
	ansiRed   = "\x1b[91m"
	ansiDim   = "\x1b[90m"
)

// score table column widths
const (
	cardsWidth    = 20
	categoryWidth = 19
	pointsWidth   = 3
	ruleWidth     = 44
	totalIndent   = 23
)

// Painter renders cards and score boards
// When Color is false the output is plain text.
type Painter struct {
	Color bool
}

func (p Painter) paint(code, s string) string {
	if !p.Color {
		return s
	}

	return code + s + ansiReset
}

func (p Painter) suit(card deck.Card) string {
	if card.Suit.IsRed() {
		return p.paint(ansiRed, card.Suit.Symbol())
	}

	return p.paint(ansiDim, card.Suit.Symbol())
}

// CardString returns a five line drawing of the card
func (p Painter) CardString(card deck.Card) string {
	rank := card.Rank.String()
	pad := strings.Repeat(" ", 2-utf8.RuneCountInString(rank))
	prettyRank := p.paint(ansiBold, rank)
	suit := p.suit(card)

	lines := []string{
		"╭─────╮",
		"│" + prettyRank + pad + "   │",
		"│  " + suit + "  │",
		"│   " + pad + prettyRank + "│",
		"╰─────╯",
	}

	return strings.Join(lines, "\n")
}

// HandString draws the starter, a gap, then the four cards side by side
func (p Painter) HandString(hand *cribbage.Hand) string {
	blocks := []string{
		strings.Repeat(" \n", 4) + " ",
		p.CardString(hand.Starter()),
		strings.Repeat("    \n", 4) + "    ",
	}

	for _, card := range hand.Cards() {
		blocks = append(blocks, p.CardString(card))
	}

	return appendBlocks(blocks)
}

// appendBlocks joins multi-line blocks horizontally
func appendBlocks(blocks []string) string {
	blockLines := make([][]string, len(blocks))
	for i, block := range blocks {
		blockLines[i] = strings.Split(block, "\n")
	}

	var b strings.Builder
	for row := range blockLines[0] {
		parts := make([]string, len(blockLines))
		for i, lines := range blockLines {
			parts[i] = lines[row]
		}

		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	return b.String()
}

func (p Painter) compactCards(cards deck.Cards) (string, int) {
	parts := make([]string, len(cards))
	width := 0
	for i, card := range cards {
		rank := card.Rank.String()
		parts[i] = rank + p.suit(card)
		width += utf8.RuneCountInString(rank) + 1
	}

	if len(cards) > 1 {
		width += len(cards) - 1
	}

	return strings.Join(parts, " "), width
}

// ScoreString renders the score board as a table with a total line, e.g.
//
//	2♢ 3♡ 4♣ 5♢          Run of Four ........  4
//	──────────────────────────────────────────────
//	                     TOTAL ..............  8
func (p Painter) ScoreString(board *cribbage.ScoreBoard) string {
	var b strings.Builder

	for _, entry := range board.Entries() {
		cards, width := p.compactCards(entry.Cards)
		name := entry.Category.String()

		b.WriteString("  ")
		b.WriteString(cards)
		b.WriteString(strings.Repeat(" ", max(cardsWidth-width, 0)))
		b.WriteString(" " + name + " ")
		b.WriteString(p.paint(ansiDim, strings.Repeat(".", max(categoryWidth-len(name), 0))))
		b.WriteString(fmt.Sprintf("%*d\n", pointsWidth, entry.Points))
	}

	if board.Len() != 0 {
		b.WriteString(p.paint(ansiDim, "  "+strings.Repeat("─", ruleWidth)))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", totalIndent))
	b.WriteString("TOTAL ")
	b.WriteString(p.paint(ansiDim, strings.Repeat(".", 14)))
	b.WriteString(fmt.Sprintf("%*d\n", pointsWidth, board.Total()))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
