package cribbage

import (
	"cribbage-trainer/pkg/deck"
)

// scorePass carries the claim state for a single scoring of a hand
type scorePass struct {
	hand  *Hand
	board *ScoreBoard

	// ranks already scored as a pair, pair royal or double pair royal
	multiples map[deck.Rank]bool
	// runs already scored, largest first
	runs []deck.Cards
}

func newScorePass(hand *Hand) *scorePass {
	return &scorePass{
		hand:      hand,
		board:     &ScoreBoard{},
		multiples: make(map[deck.Rank]bool),
	}
}

func (p *scorePass) record(category Category, rank deck.Rank, cards deck.Cards) {
	if p.hand.state != stateScoring {
		panic("cannot add to a finalized score board")
	}

	p.board.entries = append(p.board.entries, Entry{
		Category: category,
		Rank:     rank,
		Cards:    cards.Clone(),
		Points:   category.Points(),
	})
}

func (p *scorePass) considerNobs() {
	starter := p.hand.starter
	for _, card := range p.hand.cards {
		if card.Rank == deck.Jack && card.Suit == starter.Suit {
			p.record(HisNobs, 0, deck.Cards{starter, card})
			return
		}
	}
}

func (p *scorePass) considerHandFlush() {
	cards := p.hand.Cards()
	if cards.SameSuit() && cards[0].Suit != p.hand.starter.Suit {
		p.record(HandFlush, 0, cards)
	}
}

// considerMultiples scores a same-rank set unless a larger set of that rank already scored
func (p *scorePass) considerMultiples(set deck.Cards) {
	if len(set) < 2 || !set.SameRank() || p.multiples[set[0].Rank] {
		return
	}

	p.multiples[set[0].Rank] = true
	p.record(multipleCategory(len(set)), set[0].Rank, set)
}

// considerRuns scores a run unless every card in it belongs to one longer run that already scored.
// Two runs that share only some cards both score (e.g., the double run in 2 3 4 5 5).
func (p *scorePass) considerRuns(set deck.Cards) {
	if !isRun(set) {
		return
	}

	for _, run := range p.runs {
		if len(run) > len(set) && run.Contains(set) {
			return
		}
	}

	p.runs = append(p.runs, set)
	p.record(runCategory(len(set)), 0, set)
}

func (p *scorePass) considerFifteens(set deck.Cards) {
	if len(set) >= 2 && set.SumValue() == 15 {
		p.record(Fifteen, 0, set)
	}
}

func (p *scorePass) considerFiveCardFlush(set deck.Cards) {
	if len(set) == handSize && set.SameSuit() {
		p.record(FiveCardFlush, 0, set)
	}
}

// isRun expects the set to be sorted
func isRun(set deck.Cards) bool {
	if len(set) < 3 {
		return false
	}

	for i := 1; i < len(set); i++ {
		if set[i].RunValue() != set[i-1].RunValue()+1 {
			return false
		}
	}

	return true
}
