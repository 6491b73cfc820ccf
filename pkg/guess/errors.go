package guess

import (
	"errors"
	"fmt"
)

// ErrUnparseable is returned when a guess is neither numeric nor made of known tokens
// No guess is registered; the caller should ask again.
var ErrUnparseable = errors.New("could not understand the guess")

// LeftoverError reports the input the lexer could not consume
type LeftoverError struct {
	Offset int
	Rest   string
}

func (l LeftoverError) Error() string {
	return fmt.Sprintf("%v: unexpected %q at offset %d", ErrUnparseable, l.Rest, l.Offset)
}

// Is makes errors.Is(err, ErrUnparseable) match
func (l LeftoverError) Is(target error) bool {
	return target == ErrUnparseable
}
