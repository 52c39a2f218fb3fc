package plentimon

import (
	"errors"
	"fmt"
)

// ErrCascadeDepth indicates the cascade recursion exceeded its defensive
// depth cap. Distinct from ErrInvalidArgument so callers can tell the
// safety net from bad input.
var ErrCascadeDepth = errors.New("cascade depth exceeded")

// maxCascadeDepth bounds the reroll recursion. A valid reroll set leaves at
// least one face out, so reaching this is astronomically unlikely; the cap
// only guards against a pathological entropy source.
const maxCascadeDepth = 256

// RerollConfig controls the reroll engine. Faces lists the face values that
// trigger a reroll. Append includes the surviving original dice in the
// output ahead of the fresh draws; Cascade rerolls fresh draws that again
// land on a reroll face.
type RerollConfig struct {
	Faces   []int
	Append  bool
	Cascade bool
}

// NewRerollConfig returns a config for the given reroll faces with Append
// and Cascade on, the usual exploding-dice behavior.
func NewRerollConfig(faces ...int) RerollConfig {
	return RerollConfig{Faces: faces, Append: true, Cascade: true}
}

// Reroll replaces or augments dice that landed on a reroll face with fresh
// draws. Zero-valued slots in roll are treated as empty and dropped before
// processing. With Cascade, fresh draws landing on a reroll face are
// themselves rerolled; the cascade always accumulates its draws regardless
// of Append, which only controls whether the top-level originals appear in
// the output.
//
// A reroll set covering all ten faces can never terminate and is rejected
// with ErrInvalidArgument. Validation happens once here; the recursion does
// not re-validate.
func Reroll(roll []int, cfg RerollConfig) ([]int, error) {
	faces := make(map[int]struct{}, len(cfg.Faces))
	covered := 0
	for _, f := range cfg.Faces {
		if _, seen := faces[f]; seen {
			continue
		}
		faces[f] = struct{}{}
		if f >= MinFace && f <= MaxFace {
			covered++
		}
	}
	if covered == MaxFace-MinFace+1 {
		return nil, fmt.Errorf("%w: reroll faces cover every face, rerolls would never terminate", ErrInvalidArgument)
	}
	return cascadeReroll(roll, faces, cfg.Append, cfg.Cascade, 0)
}

// cascadeReroll is the unvalidated recursive core of Reroll. Each level's
// input is only the fresh draws of the level above, so termination is
// probabilistic with geometric decay; depth is capped as a backstop.
func cascadeReroll(roll []int, faces map[int]struct{}, appendOriginals, cascade bool, depth int) ([]int, error) {
	if depth > maxCascadeDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrCascadeDepth, maxCascadeDepth)
	}

	kept := compact(roll)
	if len(kept) == 0 {
		return nil, nil
	}

	var fresh []int
	for _, face := range kept {
		if _, ok := faces[face]; ok {
			drawn, err := D10()
			if err != nil {
				return nil, err
			}
			fresh = append(fresh, drawn)
		}
	}

	tail := fresh
	if cascade && len(fresh) > 0 {
		var err error
		// Append is forced on below the top level so cascades accumulate.
		tail, err = cascadeReroll(fresh, faces, true, true, depth+1)
		if err != nil {
			return nil, err
		}
	}

	if !appendOriginals {
		return tail, nil
	}
	out := make([]int, 0, len(kept)+len(tail))
	out = append(out, kept...)
	out = append(out, tail...)
	return out, nil
}

// compact drops empty (zero-valued) slots. Zero is not a valid face, so it
// doubles as the no-value marker.
func compact(roll []int) []int {
	kept := make([]int, 0, len(roll))
	for _, face := range roll {
		if face != 0 {
			kept = append(kept, face)
		}
	}
	return kept
}
