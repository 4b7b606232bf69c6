package planner

import "ants/game"

type link struct {
	cell     int
	capacity int
}

// ChainPower computes, for every cell, the largest bottleneck ant count a side
// can project from any of its bases through cells it occupies. The result is
// stored in ts.Chain[side]; unreached cells are 0.
//
// This is a widest-path search: queue order gives no first-visit guarantee, so a
// cell is re-enqueued whenever a strictly wider path to it is found, and the
// search runs until no capacity improves.
func ChainPower(ts *game.TurnState, side game.Player) []int {
	ants := ts.Ants[side]
	best := ts.Chain[side]
	for i := range best {
		best[i] = 0
	}

	queue := []link{}
	for _, base := range ts.Sides[side].Bases {
		if capacity := ants[base]; capacity > best[base] {
			best[base] = capacity
			queue = append(queue, link{base, capacity})
		}
	}

	for head := 0; head < len(queue); head++ {
		from := queue[head]
		if from.capacity < best[from.cell] {
			continue // A wider path already covered this entry
		}
		for _, next := range ts.Map.Neighbors(from.cell) {
			if ants[next] <= 0 {
				continue
			}
			capacity := min(ants[next], from.capacity)
			if capacity > best[next] {
				best[next] = capacity
				queue = append(queue, link{next, capacity})
			}
		}
	}
	return best
}
