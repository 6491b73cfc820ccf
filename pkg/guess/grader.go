package guess

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"cribbage-trainer/pkg/cribbage"
)

// Kind is the syntax a guess was written in
type Kind int

// Kind constants
const (
	// Numeric guesses are one or more whole numbers that are added together, e.g., "2 2 1"
	Numeric Kind = iota + 1
	// Symbolic guesses list the scoring combinations, e.g., "fffn"
	Symbolic
)

// Outcome is how a graded guess compares to the score board
type Outcome int

// Outcome constants
const (
	Correct Outcome = iota + 1
	WrongTotal
	// RightTotalWrongHands is a symbolic guess with the right total but the wrong combinations
	RightTotalWrongHands
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case WrongTotal:
		return "wrongTotal"
	case RightTotalWrongHands:
		return "rightTotalWrongHands"
	default:
		return "unknown"
	}
}

// Discrepancy is the difference between the claimed and actual hits in one category
// A positive Residual means the guess claimed too many.
type Discrepancy struct {
	Category cribbage.Category
	Residual int
}

func (d Discrepancy) String() string {
	verb := "missed"
	n := -d.Residual
	if d.Residual > 0 {
		verb = "overcounted"
		n = d.Residual
	}

	return fmt.Sprintf("%s: You %s %d", d.Category, verb, n)
}

// Result is a graded guess
type Result struct {
	Kind    Kind
	Outcome Outcome
	Guess   int
	Want    int
	// Discrepancies is only set for symbolic guesses, sorted by category name
	Discrepancies []Discrepancy
}

// Correct returns true if the guess was fully correct
func (r *Result) Correct() bool {
	return r.Outcome == Correct
}

// Diff returns the guessed total minus the actual total
func (r *Result) Diff() int {
	return r.Guess - r.Want
}

// Off returns how far the guessed total was from the actual total
func (r *Result) Off() int {
	if diff := r.Diff(); diff < 0 {
		return -diff
	}

	return r.Diff()
}

// Brief returns a one-line summary of the result
func (r *Result) Brief() string {
	switch r.Outcome {
	case Correct:
		return "Correct!"
	case RightTotalWrongHands:
		return "You got the right score, but the wrong hands."
	default:
		return fmt.Sprintf("You were off by %d", r.Off())
	}
}

// Details returns one line per discrepancy
func (r *Result) Details() string {
	var b strings.Builder
	for _, d := range r.Discrepancies {
		b.WriteString(d.String())
		b.WriteString("\n")
	}

	return b.String()
}

// Grade compares a guess against the score board.
// Input made only of whitespace separated whole numbers is a numeric guess; anything
// else is lexed as a symbolic guess. An error wrapping ErrUnparseable means no guess
// was registered.
func Grade(board *cribbage.ScoreBoard, input string) (*Result, error) {
	fields := strings.Fields(input)
	if isNumeric(fields) {
		return gradeNumeric(board, fields)
	}

	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}

	return gradeSymbolic(board, tokens), nil
}

func isNumeric(fields []string) bool {
	if len(fields) == 0 {
		return false
	}

	for _, field := range fields {
		for _, r := range field {
			if r < '0' || r > '9' {
				return false
			}
		}
	}

	return true
}

func gradeNumeric(board *cribbage.ScoreBoard, fields []string) (*Result, error) {
	sum := 0
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
		}

		if n > math.MaxInt-sum {
			return nil, fmt.Errorf("%w: %q overflows the total", ErrUnparseable, field)
		}

		sum += n
	}

	result := &Result{
		Kind:    Numeric,
		Outcome: WrongTotal,
		Guess:   sum,
		Want:    board.Total(),
	}

	if result.Guess == result.Want {
		result.Outcome = Correct
	}

	return result, nil
}

func gradeSymbolic(board *cribbage.ScoreBoard, tokens []Token) *Result {
	result := &Result{
		Kind: Symbolic,
		Want: board.Total(),
	}

	residuals := make(map[cribbage.Category]int)
	for _, token := range tokens {
		category := token.Category()
		result.Guess += category.Points()
		residuals[category]++
	}

	for category, n := range board.Counts() {
		residuals[category] -= n
	}

	for category, residual := range residuals {
		if residual != 0 {
			result.Discrepancies = append(result.Discrepancies, Discrepancy{
				Category: category,
				Residual: residual,
			})
		}
	}

	sort.Slice(result.Discrepancies, func(i, j int) bool {
		return result.Discrepancies[i].Category.String() < result.Discrepancies[j].Category.String()
	})

	switch {
	case len(result.Discrepancies) == 0:
		result.Outcome = Correct
	case result.Guess == result.Want:
		result.Outcome = RightTotalWrongHands
	default:
		result.Outcome = WrongTotal
	}

	return result
}
