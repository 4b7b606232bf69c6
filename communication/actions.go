package communication

import (
	"fmt"
	"strings"
)

// ActionType represents the type of command sent to the referee.
type ActionType int

const (
	BeaconAction ActionType = iota
	LineAction
	WaitAction
	MessageAction
)

// Action represents one command of a turn.
type Action struct {
	Type     ActionType
	Cell1    int
	Cell2    int // LINE only
	Strength int
	Text     string // MESSAGE only
}

func (a Action) String() string {
	switch a.Type {
	case BeaconAction:
		return fmt.Sprintf("BEACON %d %d", a.Cell1, a.Strength)
	case LineAction:
		return fmt.Sprintf("LINE %d %d %d", a.Cell1, a.Cell2, a.Strength)
	case MessageAction:
		return "MESSAGE " + a.Text
	default:
		return "WAIT"
	}
}

// Actions is the ordered command list of a turn.
type Actions []Action

// String joins the commands, each terminated by a semicolon.
func (as Actions) String() string {
	var b strings.Builder
	for _, a := range as {
		b.WriteString(a.String())
		b.WriteByte(';')
	}
	return b.String()
}

// FromBeacons emits a BEACON for every positive strength in cell order, then the
// optional message, then the trailing WAIT.
func FromBeacons(beacons []int, message string) Actions {
	actions := Actions{}
	for id, strength := range beacons {
		if strength > 0 {
			actions = append(actions, Action{Type: BeaconAction, Cell1: id, Strength: strength})
		}
	}
	if message != "" {
		actions = append(actions, Action{Type: MessageAction, Text: message})
	}
	return append(actions, Action{Type: WaitAction})
}

// Beacons returns the strength per cell set by the BEACON commands, keeping the
// max when a cell is marked twice.
func (as Actions) Beacons(cells int) []int {
	beacons := make([]int, cells)
	for _, a := range as {
		if a.Type == BeaconAction && a.Cell1 >= 0 && a.Cell1 < cells {
			beacons[a.Cell1] = max(beacons[a.Cell1], a.Strength)
		}
	}
	return beacons
}
