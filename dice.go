// Package plentimon implements the core resolution mechanic for a d10
// dice-pool game: rolling pools of ten-sided dice, counting successes
// against a target number, cascading rerolls of qualifying faces, and
// botch detection.
package plentimon

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// MinFace and MaxFace bound the faces of the die.
	MinFace = 1
	MaxFace = 10

	// BotchFace is the face that contributes to a botch when no die in the
	// pool scores a success.
	BotchFace = MinFace
)

// ErrInvalidArgument indicates a bad or out-of-range input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvariantViolation indicates the face source produced no usable value.
// Unreachable with the default source.
var ErrInvariantViolation = errors.New("invariant violation")

// drawFace produces one raw face. Swappable so tests can script exact die
// sequences; the bool mirrors sources that may fail to yield a value.
var drawFace = func() (int, bool) {
	return rand.Intn(MaxFace) + 1, true
}

// D10 rolls one ten-sided die, returning a face in [1,10]. Each call is
// independent of prior calls.
func D10() (int, error) {
	face, ok := drawFace()
	if !ok {
		return 0, fmt.Errorf("%w: face source yielded no value", ErrInvariantViolation)
	}
	if face < MinFace || face > MaxFace {
		return 0, fmt.Errorf("%w: face source yielded %d", ErrInvariantViolation, face)
	}
	return face, nil
}

// RollDice rolls a pool of numDice independent d10s and returns the faces in
// draw order. numDice must be non-negative; zero yields an empty sequence.
func RollDice(numDice int) ([]int, error) {
	if numDice < 0 {
		return nil, fmt.Errorf("%w: numDice must be non-negative, got %d", ErrInvalidArgument, numDice)
	}
	pool := make([]int, numDice)
	for i := range pool {
		face, err := D10()
		if err != nil {
			return nil, err
		}
		pool[i] = face
	}
	return pool, nil
}
