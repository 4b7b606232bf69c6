package game

import "fmt"

type Cell struct {
	ID               int      // Stable index, equal to the position in Map.Cells
	Type             CellType // Resource kind
	InitialResources int      // Resources announced at setup
	AdjacentIDs      []int    // IDs of adjacent cells, at most NeighborSize
}

// Map represents the static game graph. It is built once and never mutated afterwards.
type Map struct {
	Cells []*Cell // Indexed by cell ID
}

// NewMap creates a map with capacity for n cells.
func NewMap(n int) *Map {
	return &Map{
		Cells: make([]*Cell, 0, n),
	}
}

// AddCell appends a cell with the next free ID and returns it.
func (m *Map) AddCell(cellType CellType, resources int) *Cell {
	cell := &Cell{
		ID:               len(m.Cells),
		Type:             cellType,
		InitialResources: resources,
		AdjacentIDs:      []int{},
	}
	m.Cells = append(m.Cells, cell)
	return cell
}

// AddBorder adds a bidirectional border between two cells.
func (m *Map) AddBorder(cellID1, cellID2 int) {
	if cellID1 == cellID2 {
		return
	}
	if !contains(m.Cells[cellID1].AdjacentIDs, cellID2) {
		m.Cells[cellID1].AdjacentIDs = append(m.Cells[cellID1].AdjacentIDs, cellID2)
	}
	if !contains(m.Cells[cellID2].AdjacentIDs, cellID1) {
		m.Cells[cellID2].AdjacentIDs = append(m.Cells[cellID2].AdjacentIDs, cellID1)
	}
}

// Size returns the number of cells.
func (m *Map) Size() int {
	return len(m.Cells)
}

// Neighbors returns the adjacent cell IDs of a cell.
func (m *Map) Neighbors(cellID int) []int {
	return m.Cells[cellID].AdjacentIDs
}

// Validate checks the structural invariants of the graph.
func (m *Map) Validate() error {
	if len(m.Cells) == 0 {
		return fmt.Errorf("map has no cells")
	}
	for id, cell := range m.Cells {
		if cell.ID != id {
			return fmt.Errorf("cell at index %d has id %d", id, cell.ID)
		}
		if len(cell.AdjacentIDs) > NeighborSize {
			return fmt.Errorf("cell %d has %d neighbors, max is %d", id, len(cell.AdjacentIDs), NeighborSize)
		}
		for _, n := range cell.AdjacentIDs {
			if n < 0 || n >= len(m.Cells) {
				return fmt.Errorf("cell %d has neighbor %d out of range", id, n)
			}
			if !contains(m.Cells[n].AdjacentIDs, id) {
				return fmt.Errorf("border %d-%d is not bidirectional", id, n)
			}
		}
	}
	return nil
}

// contains checks if a slice contains a specific item (avoids duplicate borders).
func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
