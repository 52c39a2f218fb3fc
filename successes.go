package plentimon

import "fmt"

const (
	// DefaultTargetNumber is the face value at which a die counts as one
	// success when no target is configured.
	DefaultTargetNumber = 7

	// DefaultDouble is the face value at which a die counts as two successes
	// when no double threshold is configured.
	DefaultDouble = 10
)

// SuccessConfig controls success counting. Zero TargetNumber or Double
// select the defaults (7 and 10); faces are never zero, so no
// expressiveness is lost. Thresholds outside [1,10] are not rejected, they
// simply always or never trigger.
type SuccessConfig struct {
	TargetNumber  int
	Double        int
	Autosuccesses int
}

// CountSuccesses tallies successes over a sequence of die faces: a face
// below the target scores 0, at or above it 1, and at or above the double
// threshold 2, on top of the configured autosuccesses. A single die is a
// one-element slice; an empty slice yields exactly the autosuccesses.
//
// The reduction is order-independent. A double threshold below the target
// is permitted and makes every counted die score 2.
func CountSuccesses(roll []int, cfg SuccessConfig) (int, error) {
	target := cfg.TargetNumber
	if target == 0 {
		target = DefaultTargetNumber
	}
	double := cfg.Double
	if double == 0 {
		double = DefaultDouble
	}

	total := cfg.Autosuccesses
	for _, face := range roll {
		if face <= 0 || face > MaxFace {
			return 0, fmt.Errorf("%w: die face %d outside (0,%d]", ErrInvalidArgument, face, MaxFace)
		}
		switch {
		case face >= double:
			total += 2
		case face >= target:
			total++
		}
	}
	return total, nil
}
