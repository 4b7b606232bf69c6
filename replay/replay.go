package main

import (
	"fmt"

	"ants/experiments/transcript"
	"ants/game"
	"ants/planner"

	"golang.org/x/exp/slices"
)

type mismatch struct {
	Turn     int
	Recorded []int
	Planned  []int
}

type replayResult struct {
	GameID     string
	Turns      int
	Mismatches []mismatch
}

// replayGame feeds every recorded turn to p and compares the beacons it plans
// with the ones that were sent.
func replayGame(path string, p *planner.Planner) (*replayResult, error) {
	header, turns, err := transcript.Read(path)
	if err != nil {
		return nil, err
	}
	setup, err := header.Setup()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	state := game.NewTurnState(setup.Map, game.NewDistances(setup.Map), setup.Bases)
	result := &replayResult{GameID: header.GameID}
	for _, turn := range turns {
		in := turn.Input()
		if err := state.Update(in.Scores, in.Cells); err != nil {
			return result, fmt.Errorf("turn %d: %w", turn.Turn, err)
		}
		plan := p.Plan(state)
		result.Turns++
		if !slices.Equal(plan.Beacons, turn.Beacons) {
			result.Mismatches = append(result.Mismatches, mismatch{Turn: turn.Turn, Recorded: turn.Beacons, Planned: plan.Beacons})
		}
	}
	return result, nil
}
