package planner

import (
	"ants/game"
	"ants/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// StopReason tells why the growth loop ended.
type StopReason int

const (
	NoTargets   StopReason = iota // Every target is connected or deferred
	NoBudget                      // The free budget is exhausted
	NoCandidate                   // Nothing left to grow into
	Unreachable                   // Remaining targets are disconnected from the owned path
	Overspent                     // Free budget went negative
)

func (r StopReason) String() string {
	switch r {
	case NoTargets:
		return "no targets"
	case NoBudget:
		return "no budget"
	case NoCandidate:
		return "no candidate"
	case Unreachable:
		return "unreachable"
	case Overspent:
		return "overspent"
	default:
		return "unknown"
	}
}

// Line is a connected run of cells from a captured target back to, and
// excluding, the owned path it attaches to.
type Line struct {
	Target int
	Cells  []int // Target first
	Floor  int   // Uniform strength every cell is raised to
	Cost   int   // Ants needed to raise the line to Floor
}

// candidate is a cell adjacent to the owned path or the current line.
type candidate struct {
	cell     int
	parent   int
	minDist  int     // Distance to the nearest remaining target
	value    float64 // Sum of target values tied at minDist
	baseDist int     // Distance to the nearest base
}

// compareCandidates is a strict total order, best first.
func compareCandidates(a, b candidate) int {
	switch {
	case a.minDist != b.minDist:
		return a.minDist - b.minDist
	case a.value > b.value:
		return -1
	case a.value < b.value:
		return 1
	case a.baseDist != b.baseDist:
		return a.baseDist - b.baseDist
	default:
		return a.cell - b.cell
	}
}

type allocation struct {
	ts           *game.TurnState
	me           *game.Side
	opp          game.Player
	seedStrength int

	owned   []int // Insertion order
	inOwned []bool
	line    []int // Cells tentatively added towards the next target
	inLine  []bool

	remaining []int // Targets still to connect, ascending ID
	deferred  []int // Targets whose line was unaffordable this turn

	lines         []Line
	deferredLines []Line
}

func newAllocation(ts *game.TurnState, targets []int, seedStrength int) *allocation {
	n := ts.Map.Size()
	remaining := slices.Clone(targets)
	slices.Sort(remaining)
	return &allocation{
		ts:           ts,
		me:           ts.Me(),
		opp:          game.Opponent,
		seedStrength: seedStrength,
		inOwned:      make([]bool, n),
		inLine:       make([]bool, n),
		remaining:    slices.Compact(remaining),
	}
}

// run grows and commits lines until a stop condition holds.
func (a *allocation) run() StopReason {
	a.seed()
	for len(a.remaining) > 0 {
		if a.me.Free < 0 {
			log.Warn().Msgf("free budget is negative (%d), stopping", a.me.Free)
			return Overspent
		}
		if a.me.Free == 0 {
			return NoBudget
		}
		candidates := a.candidates()
		if len(candidates) == 0 {
			return NoCandidate
		}
		best := candidates[0]
		if best.minDist >= game.Infinity {
			return Unreachable
		}
		a.inLine[best.cell] = true
		a.line = append(a.line, best.cell)
		a.ts.SetParent(best.cell, best.parent)
		if a.isRemaining(best.cell) {
			a.capture(best.cell)
		}
	}
	return NoTargets
}

// seed makes every base a path root. Seeding is charged to the free budget
// before any line is grown.
func (a *allocation) seed() {
	for _, base := range a.me.Bases {
		if a.inOwned[base] {
			continue
		}
		a.inOwned[base] = true
		a.owned = append(a.owned, base)
		a.ts.SetParent(base, game.InvalidID)
		if need := a.seedStrength - a.ts.Beacon[base]; need > 0 && need <= a.me.Free {
			a.me.Spend(a.ts.RaiseBeacon(base, a.seedStrength))
		}
		a.remove(base)
	}
}

// candidates ranks every cell adjacent to the owned path or the current line.
// The parent of a candidate is the first path cell reaching it, owned cells first.
func (a *allocation) candidates() []candidate {
	seen := make(map[int]bool)
	out := []candidate{}
	for _, sources := range [][]int{a.owned, a.line} {
		for _, from := range sources {
			for _, next := range a.ts.Map.Neighbors(from) {
				if a.inOwned[next] || a.inLine[next] || seen[next] {
					continue
				}
				seen[next] = true
				out = append(out, a.rank(next, from))
			}
		}
	}
	slices.SortFunc(out, compareCandidates)
	return out
}

func (a *allocation) rank(cell, parent int) candidate {
	c := candidate{cell: cell, parent: parent, minDist: game.Infinity, baseDist: game.Infinity}
	tied := []int{}
	for _, target := range a.remaining {
		d := a.ts.Distances.Dist(cell, target)
		if d < c.minDist {
			c.minDist = d
			tied = tied[:0]
		}
		if d == c.minDist && d < game.Infinity {
			tied = append(tied, target)
		}
	}
	c.value = utils.Sum(a.ts.Value, tied)
	for _, base := range a.me.Bases {
		c.baseDist = min(c.baseDist, a.ts.Distances.Dist(cell, base))
	}
	return c
}

// capture sizes the line ending at target and commits it when affordable. The
// current line is cleared either way.
func (a *allocation) capture(target int) {
	line := Line{Target: target}
	for cell := target; cell != game.InvalidID && a.inLine[cell]; cell = a.ts.Parent[cell] {
		line.Cells = append(line.Cells, cell)
	}

	opposing := 0
	for _, cell := range line.Cells {
		opposing = max(opposing, a.ts.Chain[a.opp][cell])
	}
	line.Floor = opposing + 1
	for _, cell := range line.Cells {
		line.Cost += max(line.Floor-a.ts.Beacon[cell], 0)
	}

	a.remove(target)
	if line.Cost > a.me.Free {
		a.deferred = append(a.deferred, target)
		a.deferredLines = append(a.deferredLines, line)
		log.Debug().Msgf("deferred line to %d: needs %d, %d free", target, line.Cost, a.me.Free)
	} else {
		for _, cell := range line.Cells {
			a.me.Spend(a.ts.RaiseBeacon(cell, line.Floor))
			a.inOwned[cell] = true
			a.owned = append(a.owned, cell)
			a.inLine[cell] = false
			a.undefer(cell)
		}
		a.lines = append(a.lines, line)
	}

	for _, cell := range a.line {
		if a.inLine[cell] {
			a.inLine[cell] = false
			a.ts.ClearParent(cell)
		}
	}
	a.line = a.line[:0]
}

func (a *allocation) isRemaining(cell int) bool {
	_, ok := slices.BinarySearch(a.remaining, cell)
	return ok
}

func (a *allocation) remove(cell int) {
	if i, ok := slices.BinarySearch(a.remaining, cell); ok {
		a.remaining = slices.Delete(a.remaining, i, i+1)
	}
}

// undefer drops a deferred target that a committed line passed through.
func (a *allocation) undefer(cell int) {
	if i := utils.FindIndex(a.deferred, cell); i >= 0 {
		a.deferred = slices.Delete(a.deferred, i, i+1)
	}
}

// unclaimed returns the targets left unconnected, ascending.
func (a *allocation) unclaimed() []int {
	out := append(slices.Clone(a.remaining), a.deferred...)
	slices.Sort(out)
	return out
}
