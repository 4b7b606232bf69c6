package communication

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"ants/game"
)

// StdioCommunicator speaks the referee's whitespace separated protocol.
type StdioCommunicator struct {
	scanner *bufio.Scanner
	out     *bufio.Writer
}

func NewStdioCommunicator(in io.Reader, out io.Writer) *StdioCommunicator {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	return &StdioCommunicator{
		scanner: scanner,
		out:     bufio.NewWriter(out),
	}
}

// ReceiveSetup reads the cell count, every cell as "type resources n0..n5"
// with -1 for missing neighbors, the base count, then the bases of each side.
func (c *StdioCommunicator) ReceiveSetup() (*Setup, error) {
	n, err := c.nextInt()
	if err != nil {
		return nil, fmt.Errorf("failed to read cell count: %w", unexpected(err))
	}
	if n <= 0 {
		return nil, fmt.Errorf("invalid cell count %d", n)
	}

	m := game.NewMap(n)
	neighbors := make([][game.NeighborSize]int, n)
	for id := 0; id < n; id++ {
		cellType, err := c.nextInt()
		if err != nil {
			return nil, fmt.Errorf("failed to read type of cell %d: %w", id, unexpected(err))
		}
		resources, err := c.nextInt()
		if err != nil {
			return nil, fmt.Errorf("failed to read resources of cell %d: %w", id, unexpected(err))
		}
		m.AddCell(game.CellType(cellType), resources)
		for i := range neighbors[id] {
			if neighbors[id][i], err = c.nextInt(); err != nil {
				return nil, fmt.Errorf("failed to read neighbor %d of cell %d: %w", i, id, unexpected(err))
			}
		}
	}
	for id, row := range neighbors {
		for _, neighbor := range row {
			if neighbor == game.InvalidID {
				continue
			}
			if neighbor < 0 || neighbor >= n {
				return nil, fmt.Errorf("cell %d has neighbor %d out of range", id, neighbor)
			}
			m.AddBorder(id, neighbor)
		}
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}

	count, err := c.nextInt()
	if err != nil {
		return nil, fmt.Errorf("failed to read base count: %w", unexpected(err))
	}
	setup := &Setup{Map: m}
	for p := range setup.Bases {
		setup.Bases[p] = make([]int, count)
		for i := range setup.Bases[p] {
			base, err := c.nextInt()
			if err != nil {
				return nil, fmt.Errorf("failed to read base %d of player %d: %w", i, p, unexpected(err))
			}
			if base < 0 || base >= n {
				return nil, fmt.Errorf("base %d of player %d is out of range", base, p)
			}
			setup.Bases[p][i] = base
		}
	}
	return setup, nil
}

// ReceiveTurn reads both scores then "resources ants0 ants1" per cell. io.EOF is
// returned as is when the input ends before a turn starts.
func (c *StdioCommunicator) ReceiveTurn(cells int) (*Turn, error) {
	turn := &Turn{Cells: make([]game.CellUpdate, cells)}
	for p := range turn.Scores {
		score, err := c.nextInt()
		if err != nil {
			if p == 0 && errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read score of player %d: %w", p, unexpected(err))
		}
		turn.Scores[p] = score
	}
	for id := range turn.Cells {
		values := [1 + game.PlayerSize]int{}
		for i := range values {
			v, err := c.nextInt()
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %d: %w", id, unexpected(err))
			}
			values[i] = v
		}
		turn.Cells[id] = game.CellUpdate{
			Resources: values[0],
			Ants:      [game.PlayerSize]int{values[1], values[2]},
		}
	}
	return turn, nil
}

// SendActions writes the actions as one line and flushes it.
func (c *StdioCommunicator) SendActions(actions Actions) error {
	if _, err := c.out.WriteString(actions.String() + "\n"); err != nil {
		return fmt.Errorf("failed to write actions: %w", err)
	}
	return c.out.Flush()
}

// nextInt reads one token. A clean end of input is io.EOF, a non numeric token
// is a parse error.
func (c *StdioCommunicator) nextInt() (int, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	return strconv.Atoi(c.scanner.Text())
}

// unexpected turns an end of input in the middle of a message into io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
