package planner

import (
	"testing"

	"ants/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type cellSpec struct {
	typ    game.CellType
	res    int
	mine   int
	theirs int
}

// newTestState builds a board and applies one turn of input to it.
func newTestState(t *testing.T, cells []cellSpec, edges [][2]int, myBases, oppBases []int) *game.TurnState {
	m := game.NewMap(len(cells))
	for _, c := range cells {
		m.AddCell(c.typ, c.res)
	}
	for _, e := range edges {
		m.AddBorder(e[0], e[1])
	}
	require.NoError(t, m.Validate(), "Test map should be valid")

	ts := game.NewTurnState(m, game.NewDistances(m), [game.PlayerSize][]int{myBases, oppBases})
	require.NoError(t, ts.Update([game.PlayerSize]int{}, updatesOf(cells)), "Test turn should apply")
	return ts
}

func updatesOf(cells []cellSpec) []game.CellUpdate {
	updates := make([]game.CellUpdate, len(cells))
	for i, c := range cells {
		updates[i] = game.CellUpdate{Resources: c.res, Ants: [game.PlayerSize]int{c.mine, c.theirs}}
	}
	return updates
}

// path returns the edges of 0-1-...-(n-1).
func path(n int) [][2]int {
	edges := [][2]int{}
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	return edges
}

// newRandomState builds a connected random board: a spanning path plus random
// extra borders, random resources and ants.
func newRandomState(t *testing.T, r *rand.Rand, n int) *game.TurnState {
	cells := make([]cellSpec, n)
	for i := range cells {
		switch r.Intn(4) {
		case 0:
			cells[i] = cellSpec{typ: game.Egg, res: 1 + r.Intn(20)}
		case 1:
			cells[i] = cellSpec{typ: game.Crystal, res: 1 + r.Intn(50)}
		}
		if r.Intn(3) == 0 {
			cells[i].theirs = r.Intn(12)
		}
	}
	cells[0].mine = 10 + r.Intn(40)
	cells[n-1].theirs = 10 + r.Intn(40)

	degree := make([]int, n)
	edges := [][2]int{}
	for _, e := range path(n) {
		edges = append(edges, e)
		degree[e[0]]++
		degree[e[1]]++
	}
	for i := 0; i < n; i++ {
		a, b := r.Intn(n), r.Intn(n)
		if a == b || degree[a] >= game.NeighborSize || degree[b] >= game.NeighborSize || b == a+1 || a == b+1 {
			continue
		}
		edges = append(edges, [2]int{a, b})
		degree[a]++
		degree[b]++
	}
	return newTestState(t, cells, edges, []int{0}, []int{n - 1})
}
