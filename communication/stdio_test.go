package communication

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"ants/game"

	"github.com/stretchr/testify/require"
)

// Three cells in a row with a crystal in the middle, one base each.
const setupInput = `3
0 0 1 -1 -1 -1 -1 -1
2 40 0 2 -1 -1 -1 -1
0 0 1 -1 -1 -1 -1 -1
1
0
2
`

func TestReceiveSetup(t *testing.T) {
	t.Run("parses cells, borders and bases", func(t *testing.T) {
		c := NewStdioCommunicator(strings.NewReader(setupInput), io.Discard)

		setup, err := c.ReceiveSetup()

		require.NoError(t, err, "Setup should parse")
		require.Equal(t, 3, setup.Map.Size(), "Map should have 3 cells")
		require.Equal(t, game.Crystal, setup.Map.Cells[1].Type, "Cell 1 should be a crystal")
		require.Equal(t, 40, setup.Map.Cells[1].InitialResources, "Cell 1 should hold 40")
		require.Equal(t, []int{0, 2}, setup.Map.Neighbors(1), "Cell 1 should border both ends")
		require.Equal(t, [game.PlayerSize][]int{{0}, {2}}, setup.Bases, "Bases should be read per player")
	})

	t.Run("short input is unexpected", func(t *testing.T) {
		c := NewStdioCommunicator(strings.NewReader("3\n0 0 1"), io.Discard)

		_, err := c.ReceiveSetup()

		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "Truncated setup should fail")
	})

	t.Run("neighbor out of range", func(t *testing.T) {
		c := NewStdioCommunicator(strings.NewReader("1\n0 0 4 -1 -1 -1 -1 -1\n1\n0\n0\n"), io.Discard)

		_, err := c.ReceiveSetup()

		require.ErrorContains(t, err, "out of range", "Bad neighbor should fail")
	})

	t.Run("non numeric token", func(t *testing.T) {
		c := NewStdioCommunicator(strings.NewReader("x"), io.Discard)

		_, err := c.ReceiveSetup()

		require.Error(t, err, "Garbage should fail")
	})
}

func TestReceiveTurn(t *testing.T) {
	t.Run("parses scores and cells", func(t *testing.T) {
		c := NewStdioCommunicator(strings.NewReader("5 7\n0 10 0\n38 2 1\n0 0 9\n"), io.Discard)

		turn, err := c.ReceiveTurn(3)

		require.NoError(t, err, "Turn should parse")
		require.Equal(t, [game.PlayerSize]int{5, 7}, turn.Scores, "Scores should be read")
		require.Equal(t, game.CellUpdate{Resources: 38, Ants: [game.PlayerSize]int{2, 1}}, turn.Cells[1], "Cell 1 should be read")
	})

	t.Run("end of input between turns", func(t *testing.T) {
		c := NewStdioCommunicator(strings.NewReader(""), io.Discard)

		_, err := c.ReceiveTurn(3)

		require.Equal(t, io.EOF, err, "Clean end should be io.EOF")
	})

	t.Run("end of input inside a turn", func(t *testing.T) {
		c := NewStdioCommunicator(strings.NewReader("5 7\n0 10"), io.Discard)

		_, err := c.ReceiveTurn(3)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "Truncated turn should fail")
		require.NotEqual(t, io.EOF, err, "Truncated turn should not look like the end")
	})
}

func TestSendActions(t *testing.T) {
	var out bytes.Buffer
	c := NewStdioCommunicator(strings.NewReader(""), &out)

	err := c.SendActions(FromBeacons([]int{1, 0, 3}, ""))

	require.NoError(t, err, "Write should succeed")
	require.Equal(t, "BEACON 0 1;BEACON 2 3;WAIT;\n", out.String(), "Actions should be one line")
}
