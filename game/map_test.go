package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newLine builds a path graph 0-1-...-(n-1) of empty cells.
func newLine(n int) *Map {
	m := NewMap(n)
	for i := 0; i < n; i++ {
		m.AddCell(Empty, 0)
	}
	for i := 1; i < n; i++ {
		m.AddBorder(i-1, i)
	}
	return m
}

func TestMapAddBorder(t *testing.T) {
	t.Run("borders are bidirectional and deduplicated", func(t *testing.T) {
		m := newLine(3)
		m.AddBorder(0, 1)
		m.AddBorder(1, 0)

		require.Equal(t, []int{1}, m.Neighbors(0), "Cell 0 should have a single neighbor")
		require.Equal(t, []int{0, 2}, m.Neighbors(1), "Cell 1 should keep insertion order")
		require.NoError(t, m.Validate(), "Line map should be valid")
	})

	t.Run("self loops are ignored", func(t *testing.T) {
		m := newLine(2)
		m.AddBorder(1, 1)

		require.Equal(t, []int{0}, m.Neighbors(1), "Self loop should not be added")
	})
}

func TestMapValidate(t *testing.T) {
	t.Run("empty map is invalid", func(t *testing.T) {
		require.Error(t, NewMap(0).Validate(), "Empty map should be rejected")
	})

	t.Run("out of range neighbor is invalid", func(t *testing.T) {
		m := newLine(2)
		m.Cells[0].AdjacentIDs = append(m.Cells[0].AdjacentIDs, 5)

		require.Error(t, m.Validate(), "Neighbor outside the map should be rejected")
	})

	t.Run("one way border is invalid", func(t *testing.T) {
		m := newLine(3)
		m.Cells[0].AdjacentIDs = append(m.Cells[0].AdjacentIDs, 2)

		require.Error(t, m.Validate(), "Asymmetric adjacency should be rejected")
	})

	t.Run("too many neighbors is invalid", func(t *testing.T) {
		m := NewMap(8)
		for i := 0; i < 8; i++ {
			m.AddCell(Empty, 0)
		}
		for i := 1; i < 8; i++ {
			m.AddBorder(0, i)
		}

		require.Error(t, m.Validate(), "A cell with 7 neighbors should be rejected")
	})
}
