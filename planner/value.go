package planner

import "ants/game"

// EggWeight weighs eggs up when crystals are comparatively abundant, scaled by
// the number of bases collecting at once. It is 0 when no eggs are left.
func EggWeight(ts *game.TurnState) float64 {
	eggs, crystals := ts.Totals()
	if eggs == 0 {
		return 0
	}
	return float64(crystals) / float64(eggs) * float64(len(ts.Me().Bases))
}

// ScoreToWin is the score that guarantees a win once reached.
func ScoreToWin(ts *game.TurnState) int {
	_, crystals := ts.Totals()
	return (ts.Me().Score + ts.Opponent().Score + crystals) / 2
}

// Winning reports whether the agent reaches ScoreToWin by harvesting one
// crystal per ant, in which case eggs are no longer worth collecting.
func Winning(ts *game.TurnState) bool {
	me := ts.Me()
	return me.Score+me.Ants >= ScoreToWin(ts)
}

// Valuate scores every resource cell into ts.Value and returns the cells worth
// targeting in ascending ID order.
func Valuate(ts *game.TurnState) []int {
	eggWeight := EggWeight(ts)
	skipEggs := Winning(ts)

	targets := []int{}
	for id, resources := range ts.Resources {
		var value float64
		switch {
		case ts.IsCrystal(id):
			value = float64(resources)
		case ts.IsEgg(id) && !skipEggs:
			value = float64(resources) * eggWeight
		}
		if value > 0 {
			ts.Value[id] = value
			targets = append(targets, id)
		}
	}
	return targets
}
