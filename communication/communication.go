package communication

import "ants/game"

// Communicator is an interface that abstracts the communication mechanism.
type Communicator interface {
	ReceiveSetup() (*Setup, error)
	ReceiveTurn(cells int) (*Turn, error)
	SendActions(actions Actions) error
}

// Setup is the static game description read once at start.
type Setup struct {
	Map   *game.Map
	Bases [game.PlayerSize][]int
}

// Turn is the input of one turn.
type Turn struct {
	Scores [game.PlayerSize]int
	Cells  []game.CellUpdate
}
