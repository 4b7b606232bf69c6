package game

import "fmt"

// Side holds the per-game and per-turn data of one player.
type Side struct {
	ID    Player
	Bases []int // Base cell IDs, fixed for the game
	Score int   // Reported by the referee, informational
	Ants  int   // Total ants on the board this turn
	Free  int   // Ants not yet committed to a beacon this turn
}

// Spend deducts committed ants from the free budget.
func (s *Side) Spend(n int) {
	s.Free -= n
}

// CellUpdate is the per-turn input of one cell.
type CellUpdate struct {
	Resources int
	Ants      [PlayerSize]int
}

// TurnState is the dynamic state of the board for one turn. Everything except
// the map, the distances and the bases is overwritten by Update.
//
// The computed fields below the divider form a turn-scoped arena indexed by cell
// ID; Reset clears them.
type TurnState struct {
	Map       *Map       // Reference to the static game map
	Distances *Distances // Reference to the static distance table
	Turn      int        // 1-based turn counter, 0 before the first update
	Sides     [PlayerSize]*Side
	Resources []int             // Resources per cell
	Ants      [PlayerSize][]int // Ants per side per cell

	Value  []float64         // Valuation score per cell
	Beacon []int             // Marker strength per cell, only raised during a turn
	Chain  [PlayerSize][]int // Chain power per side per cell
	Parent []int             // Path parent during frontier growth, InvalidID if none
	Depth  []int             // Path depth during frontier growth, -1 if not on a path
}

// NewTurnState initializes the state for a validated map. bases holds the base
// cells of each side.
func NewTurnState(m *Map, d *Distances, bases [PlayerSize][]int) *TurnState {
	n := m.Size()
	ts := &TurnState{
		Map:       m,
		Distances: d,
		Resources: make([]int, n),
		Value:     make([]float64, n),
		Beacon:    make([]int, n),
		Parent:    make([]int, n),
		Depth:     make([]int, n),
	}
	for p := range ts.Sides {
		ts.Sides[p] = &Side{ID: Player(p), Bases: bases[p]}
		ts.Ants[p] = make([]int, n)
		ts.Chain[p] = make([]int, n)
	}
	for id, cell := range m.Cells {
		ts.Resources[id] = cell.InitialResources
	}
	ts.Reset()
	return ts
}

// Update applies a new turn's input and resets all computed fields.
func (ts *TurnState) Update(scores [PlayerSize]int, cells []CellUpdate) error {
	if len(cells) != ts.Map.Size() {
		return fmt.Errorf("turn has %d cells, map has %d", len(cells), ts.Map.Size())
	}
	ts.Turn++
	for p, side := range ts.Sides {
		side.Score = scores[p]
		side.Ants = 0
	}
	for id, cell := range cells {
		ts.Resources[id] = cell.Resources
		for p := range ts.Sides {
			ts.Ants[p][id] = cell.Ants[p]
			ts.Sides[p].Ants += cell.Ants[p]
		}
	}
	ts.Reset()
	return nil
}

// Reset clears the turn-scoped fields and restores every free budget to the
// side's ant count. Calling it repeatedly is a no-op.
func (ts *TurnState) Reset() {
	for id := range ts.Beacon {
		ts.Value[id] = 0
		ts.Beacon[id] = 0
		ts.Parent[id] = InvalidID
		ts.Depth[id] = -1
		for p := range ts.Chain {
			ts.Chain[p][id] = 0
		}
	}
	for _, side := range ts.Sides {
		side.Free = side.Ants
	}
}

// Me returns the agent's side.
func (ts *TurnState) Me() *Side {
	return ts.Sides[Me]
}

// Opponent returns the opposing side.
func (ts *TurnState) Opponent() *Side {
	return ts.Sides[Opponent]
}

// IsEgg reports whether a cell currently holds perishable resources.
func (ts *TurnState) IsEgg(cellID int) bool {
	return ts.Map.Cells[cellID].Type == Egg && ts.Resources[cellID] > 0
}

// IsCrystal reports whether a cell currently holds durable resources.
func (ts *TurnState) IsCrystal(cellID int) bool {
	return ts.Map.Cells[cellID].Type == Crystal && ts.Resources[cellID] > 0
}

// Totals returns the resources left on the board per kind.
func (ts *TurnState) Totals() (eggs, crystals int) {
	for id, r := range ts.Resources {
		if r <= 0 {
			continue
		}
		switch ts.Map.Cells[id].Type {
		case Egg:
			eggs += r
		case Crystal:
			crystals += r
		}
	}
	return eggs, crystals
}

// RaiseBeacon raises the marker of a cell to at least strength and returns the
// amount added. Markers are never lowered.
func (ts *TurnState) RaiseBeacon(cellID, strength int) int {
	add := max(strength-ts.Beacon[cellID], 0)
	ts.Beacon[cellID] += add
	return add
}

// SetParent links a cell to the path cell that reached it. A parent of
// InvalidID makes the cell a path root.
func (ts *TurnState) SetParent(cellID, parentID int) {
	ts.Parent[cellID] = parentID
	if parentID == InvalidID {
		ts.Depth[cellID] = 0
		return
	}
	ts.Depth[cellID] = ts.Depth[parentID] + 1
}

// ClearParent removes a cell from any path.
func (ts *TurnState) ClearParent(cellID int) {
	ts.Parent[cellID] = InvalidID
	ts.Depth[cellID] = -1
}
