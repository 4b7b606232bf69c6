package experiments

import (
	"ants/communication"
	"ants/game"

	"golang.org/x/exp/rand"
)

// RandomBoard generates a connected map: a ring through every cell plus random
// chords, with at most game.NeighborSize borders per cell.
func RandomBoard(r *rand.Rand, cells, bases int) *communication.Setup {
	m := game.NewMap(cells)
	for i := 0; i < cells; i++ {
		switch r.Intn(5) {
		case 0:
			m.AddCell(game.Egg, 5+r.Intn(30))
		case 1, 2:
			m.AddCell(game.Crystal, 10+r.Intn(90))
		default:
			m.AddCell(game.Empty, 0)
		}
	}
	for i := 0; i < cells; i++ {
		m.AddBorder(i, (i+1)%cells)
	}
	for i := 0; i < cells; i++ {
		a, b := r.Intn(cells), r.Intn(cells)
		if len(m.Neighbors(a)) < game.NeighborSize && len(m.Neighbors(b)) < game.NeighborSize {
			m.AddBorder(a, b)
		}
	}

	setup := &communication.Setup{Map: m}
	picked := r.Perm(cells)[:bases*game.PlayerSize]
	for p := range setup.Bases {
		setup.Bases[p] = append([]int(nil), picked[p*bases:(p+1)*bases]...)
	}
	return setup
}

// RandomTurn spreads each side's ants around its bases, growing with the turn
// number, and depletes resources as the game goes on.
func RandomTurn(r *rand.Rand, setup *communication.Setup, turn int) *communication.Turn {
	m := setup.Map
	in := &communication.Turn{Cells: make([]game.CellUpdate, m.Size())}
	for id, cell := range m.Cells {
		left := cell.InitialResources - r.Intn(turn+1)
		in.Cells[id].Resources = max(left, 0)
	}
	for p, bases := range setup.Bases {
		in.Scores[p] = r.Intn(turn + 1)
		for _, base := range bases {
			ants := 10 + 2*turn
			cell := base
			for ants > 0 {
				n := 1 + r.Intn(ants)
				in.Cells[cell].Ants[p] += n
				ants -= n
				neighbors := m.Neighbors(cell)
				cell = neighbors[r.Intn(len(neighbors))]
			}
		}
	}
	return in
}
