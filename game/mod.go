package game

const (
	NeighborSize = 6  // Maximum number of adjacent cells
	PlayerSize   = 2  // Exactly two sides play
	InvalidID    = -1 // Marks a missing neighbor or an unset parent
)

// Player identifies a side. The agent always plays Me.
type Player int

const (
	Me Player = iota
	Opponent
)

// Other returns the opposing side.
func (p Player) Other() Player {
	return 1 - p
}

// CellType is the resource kind carried by a cell, using the protocol's type codes.
type CellType int

const (
	Empty   CellType = iota
	Egg              // Perishable resource, turns into ants when harvested
	Crystal          // Durable resource, counts towards the score
)

func (t CellType) String() string {
	switch t {
	case Egg:
		return "egg"
	case Crystal:
		return "crystal"
	default:
		return "empty"
	}
}
