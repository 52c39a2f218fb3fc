package plentimon

// RollConfig configures a full pool roll. Zero TargetNumber and Double
// select the defaults (7 and 10). RerollFaces may be empty for no rerolls;
// Cascade only matters when it is not.
type RollConfig struct {
	TargetNumber  int
	Double        int
	RerollFaces   []int
	Cascade       bool
	Autosuccesses int
}

// DefaultRollConfig returns the standard configuration: target 7, doubles
// on 10, cascading rerolls, no reroll faces, no autosuccesses.
func DefaultRollConfig() RollConfig {
	return RollConfig{TargetNumber: DefaultTargetNumber, Double: DefaultDouble, Cascade: true}
}

// RollResult is the outcome of one pool roll.
type RollResult struct {
	// Result is the final die sequence after rerolls: the original pool in
	// draw order followed by every fresh draw across all cascade levels.
	Result []int
	// DiceRolled is len(Result).
	DiceRolled int
	// Successes is counted over the original pool only; rerolled
	// replacement dice never contribute. At least Autosuccesses.
	Successes int
	// NumDice is the pool size that was requested.
	NumDice int
	// Botch reports a critical failure: zero successes with at least one
	// die in the original pool showing a 1.
	Botch bool
}

// Roll draws a pool of numDice d10s, applies rerolls, and scores it.
// Successes and the botch check are computed from the pre-reroll pool;
// rerolled dice appear only in Result.
func Roll(numDice int, cfg RollConfig) (RollResult, error) {
	pool, err := RollDice(numDice)
	if err != nil {
		return RollResult{}, err
	}

	result, err := Reroll(pool, RerollConfig{Faces: cfg.RerollFaces, Append: true, Cascade: cfg.Cascade})
	if err != nil {
		return RollResult{}, err
	}

	successes, err := CountSuccesses(pool, SuccessConfig{
		TargetNumber:  cfg.TargetNumber,
		Double:        cfg.Double,
		Autosuccesses: cfg.Autosuccesses,
	})
	if err != nil {
		return RollResult{}, err
	}

	botch := false
	if successes == 0 {
		for _, face := range pool {
			if face == BotchFace {
				botch = true
				break
			}
		}
	}

	return RollResult{
		Result:     result,
		DiceRolled: len(result),
		Successes:  successes,
		NumDice:    numDice,
		Botch:      botch,
	}, nil
}
